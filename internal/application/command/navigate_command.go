package command

type NavigateCommand struct {
	Route     string `json:"route"`
	ContextID int    `json:"context_id,omitempty"`
}
