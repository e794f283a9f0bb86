package models

import (
	"time"
)

const DefaultAvatarURL = "/static/images/quill_and_ink.png"

type User struct {
	UserID                 string     `json:"userId" db:"user_id"`
	Username               string     `json:"username" db:"username"`
	Email                  string     `json:"email" db:"email"`
	PasswordHash           string     `json:"-" db:"password_hash"`
	AvatarURL              string     `json:"avatarUrl" db:"avatar_url"`
	AboutMe                string     `json:"aboutMe" db:"about_me"`
	RefreshToken           string     `json:"-" db:"refresh_token"`
	RefreshTokenExpiryTime *time.Time `json:"-" db:"refresh_token_expiry_time"`
	CreatedAt              time.Time  `json:"createdAt" db:"created_at"`
	Scribs                 []Scrib    `json:"scribs,omitempty" db:"-"`
}

type Scrib struct {
	ScribID   string       `json:"scribId" db:"scrib_id"`
	UserID    string       `json:"userId" db:"user_id"`
	Title     string       `json:"title" db:"title"`
	Prompt    string       `json:"prompt" db:"prompt"`
	ScribText string       `json:"scribText" db:"scrib_text"`
	CreatedAt time.Time    `json:"createdAt" db:"created_at"`
	Images    []ScribImage `json:"images" db:"-"`
	Author    *User        `json:"author,omitempty" db:"-"`
}

type ScribImage struct {
	ImageID   string    `json:"imageId" db:"image_id"`
	ScribID   string    `json:"scribId" db:"scrib_id"`
	ImageURL  string    `json:"imageUrl" db:"image_url"`
	Position  int       `json:"position" db:"position"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Comment struct {
	CommentID   string    `json:"commentId" db:"comment_id"`
	UserID      string    `json:"userId" db:"user_id"`
	ScribID     string    `json:"scribId" db:"scrib_id"`
	CommentText string    `json:"commentText" db:"comment_text"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// ToMap returns the user as a plain key/value representation,
// nested scribs included when they are loaded
func (u *User) ToMap() map[string]interface{} {
	result := map[string]interface{}{
		"userId":    u.UserID,
		"username":  u.Username,
		"email":     u.Email,
		"avatarUrl": u.AvatarURL,
		"aboutMe":   u.AboutMe,
		"createdAt": u.CreatedAt.Format(time.RFC3339),
	}

	if u.Scribs != nil {
		scribs := make([]map[string]interface{}, 0, len(u.Scribs))
		for i := range u.Scribs {
			scribs = append(scribs, u.Scribs[i].ToMap())
		}
		result["scribs"] = scribs
	}

	return result
}

// ToMap returns the scrib as a plain key/value representation,
// the author's username and avatar inlined when the author is loaded
func (s *Scrib) ToMap() map[string]interface{} {
	imageURLs := make([]string, 0, len(s.Images))
	for _, image := range s.Images {
		imageURLs = append(imageURLs, image.ImageURL)
	}

	result := map[string]interface{}{
		"scribId":   s.ScribID,
		"userId":    s.UserID,
		"title":     s.Title,
		"prompt":    s.Prompt,
		"scribText": s.ScribText,
		"images":    imageURLs,
		"createdAt": s.CreatedAt.Format(time.RFC3339),
	}

	if s.Author != nil {
		result["username"] = s.Author.Username
		result["avatarUrl"] = s.Author.AvatarURL
	}

	return result
}

func (c *Comment) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"commentId":   c.CommentID,
		"userId":      c.UserID,
		"scribId":     c.ScribID,
		"commentText": c.CommentText,
		"createdAt":   c.CreatedAt.Format(time.RFC3339),
	}
}
