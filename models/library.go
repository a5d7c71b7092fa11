package models

// LibraryStatus is the reading state of a library entry.
type LibraryStatus string

const (
	LibraryStatusReading    LibraryStatus = "reading"
	LibraryStatusCompleted  LibraryStatus = "completed"
	LibraryStatusPlanToRead LibraryStatus = "plan-to-read"
	LibraryStatusDropped    LibraryStatus = "dropped"
)

// Valid reports whether s is one of the known statuses.
func (s LibraryStatus) Valid() bool {
	switch s {
	case LibraryStatusReading, LibraryStatusCompleted, LibraryStatusPlanToRead, LibraryStatusDropped:
		return true
	}
	return false
}

// Chapter is a single chapter of a novel volume.
type Chapter struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Number    int    `json:"number"`
	WordCount int    `json:"wordCount,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// Volume groups chapters of a novel.
type Volume struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Number   int       `json:"number"`
	Chapters []Chapter `json:"chapters,omitempty"`
}

// Novel is a catalog item.
type Novel struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Cover       string   `json:"cover,omitempty"`
	Description string   `json:"description,omitempty"`
	Genres      []string `json:"genres,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Rating      float64  `json:"rating"`
	Views       int64    `json:"views,omitempty"`
	Status      string   `json:"status,omitempty"`
	Year        int      `json:"year,omitempty"`
	Volumes     []Volume `json:"volumes,omitempty"`
	CreatedAt   string   `json:"createdAt,omitempty"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
}

// LibraryItem is a novel placed in a user's library. Identity is the pair
// (UserID, NovelID).
type LibraryItem struct {
	UserID     string        `json:"userId"`
	NovelID    string        `json:"novelId"`
	AddedDate  string        `json:"addedDate"`
	IsFavorite bool          `json:"isFavorite"`
	Status     LibraryStatus `json:"status"`
}

// ReadingProgress is the reading position of a user in a novel. Identity is
// the pair (UserID, NovelID).
type ReadingProgress struct {
	UserID         string  `json:"userId"`
	NovelID        string  `json:"novelId"`
	ChapterID      string  `json:"chapterId"`
	Progress       float64 `json:"progress"`
	LastRead       string  `json:"lastRead"`
	ScrollPosition float64 `json:"scrollPosition,omitempty"`
}

// ClampProgress bounds p.Progress to the 0..100 range.
func (p *ReadingProgress) ClampProgress() {
	switch {
	case p.Progress < 0:
		p.Progress = 0
	case p.Progress > 100:
		p.Progress = 100
	}
}

// Comment is a reader comment on a novel or a chapter.
type Comment struct {
	ID        string `json:"id"`
	NovelID   string `json:"novelId"`
	ChapterID string `json:"chapterId,omitempty"`
	UserID    string `json:"userId"`
	ParentID  string `json:"parentId,omitempty"`
	Content   string `json:"content"`
	Likes     int    `json:"likes,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// Review is a rated review of a novel.
type Review struct {
	ID        string  `json:"id"`
	NovelID   string  `json:"novelId"`
	UserID    string  `json:"userId"`
	Rating    float64 `json:"rating"`
	Content   string  `json:"content"`
	CreatedAt string  `json:"createdAt"`
}
