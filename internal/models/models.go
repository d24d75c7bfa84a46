package models

import (
	"time"
)

type User struct {
	UserID       int64     `json:"user_id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Post is a blog entry joined with its author's username. List views carry
// Preview and leave Content empty; the detail view carries Content.
type Post struct {
	PostID    int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Username  string    `json:"username" db:"username"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content,omitempty" db:"content"`
	Preview   string    `json:"preview,omitempty" db:"-"`
	ImageURL  *string   `json:"image_url" db:"image_url"`
	Category  *string   `json:"category" db:"category"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type CreatePostRequest struct {
	UserID   int64   `json:"user_id"`
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	ImageURL *string `json:"image_url"`
	Category *string `json:"category"`
}

type Comment struct {
	CommentID   int64     `json:"id" db:"id"`
	PostID      int64     `json:"post_id" db:"post_id"`
	Username    string    `json:"username" db:"username"`
	CommentText string    `json:"comment_text" db:"comment_text"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type CreateCommentRequest struct {
	PostID      int64  `json:"post_id"`
	Username    string `json:"username"`
	CommentText string `json:"comment_text"`
}

// LikeAction reports which way a like toggle went.
type LikeAction string

const (
	Liked   LikeAction = "liked"
	Unliked LikeAction = "unliked"
)
