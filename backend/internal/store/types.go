package store

// Memory is a durable per-user fact, keyed per (user, guild)
type Memory struct {
	Key     string `json:"key"`
	Value   string `json:"value"`
	Context string `json:"context,omitempty"`
}

// Message is one persisted conversation turn. Only user and assistant
// turns are ever stored; tool turns live and die inside a single run.
type Message struct {
	ID        int64  `json:"id"`
	UserID    string `json:"user_id"`
	GuildID   string `json:"guild_id"`
	ChannelID string `json:"channel_id"`
	Role      string `json:"role"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// Project is a lightweight tracked project
type Project struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	CreatorID   string `json:"creator_id"`
	Archived    bool   `json:"archived"`
	CreatedAt   string `json:"created_at"`
}

// Task is a checklist item belonging to a project
type Task struct {
	ID         int64  `json:"id"`
	ProjectID  int64  `json:"project_id"`
	Label      string `json:"label"`
	Done       bool   `json:"done"`
	AssigneeID string `json:"assignee_id,omitempty"`
	CreatedAt  string `json:"created_at"`
}

// Idea is a free-form suggestion dropped into the idea box
type Idea struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	AuthorID  string `json:"author_id"`
	Used      bool   `json:"used"`
	CreatedAt string `json:"created_at"`
}

// Note is a timestamped annotation on a project or task
type Note struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	AuthorID  string `json:"author_id"`
	CreatedAt string `json:"created_at"`
}

// ProjectInfo is a project with its tasks and notes resolved
type ProjectInfo struct {
	Project Project `json:"project"`
	Tasks   []Task  `json:"tasks"`
	Notes   []Note  `json:"notes"`
}
