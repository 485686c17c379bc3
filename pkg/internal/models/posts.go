package models

import "time"

type Post struct {
	BaseModel

	Title    *string `json:"title"`
	Content  string  `json:"content"`
	Language string  `json:"language"`

	AuthorID uint    `json:"author_id" gorm:"index"`
	Author   Account `json:"author"`

	Comments []Comment `json:"-"`
	Likes    []Like    `json:"-"`

	Metric PostMetric `json:"metric" gorm:"-"`
}

type PostMetric struct {
	LikeCount    int64 `json:"like_count"`
	CommentCount int64 `json:"comment_count"`
}

type Comment struct {
	BaseModel

	Content  string  `json:"content"`
	PostID   uint    `json:"post_id" gorm:"index"`
	AuthorID uint    `json:"author_id" gorm:"index"`
	Author   Account `json:"author"`
}

type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"uniqueIndex:idx_like_pair"`
	AccountID uint      `json:"account_id" gorm:"uniqueIndex:idx_like_pair"`
	CreatedAt time.Time `json:"created_at"`
}
