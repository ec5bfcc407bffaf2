package models

import (
	"time"
)

type User struct {
	UserID       string    `json:"id" db:"user_id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Bio          *string   `json:"bio" db:"bio"`
	AvatarURL    *string   `json:"profile_picture_url" db:"avatar_url"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

type Post struct {
	PostID    string    `json:"id" db:"post_id"`
	AuthorID  string    `json:"user_id" db:"author_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type Reply struct {
	ReplyID      string    `json:"id" db:"reply_id"`
	AuthorID     string    `json:"user_id" db:"author_id"`
	ParentPostID string    `json:"parent_post_id" db:"parent_post_id"`
	Content      string    `json:"content" db:"content"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// ReplyWithAuthor - реплай вместе с отображаемыми полями автора
type ReplyWithAuthor struct {
	ReplyID      string    `json:"id" db:"reply_id"`
	AuthorID     string    `json:"user_id" db:"author_id"`
	ParentPostID string    `json:"parent_post_id" db:"parent_post_id"`
	Content      string    `json:"content" db:"content"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	Username     string    `json:"username" db:"username"`
	AvatarURL    *string   `json:"profile_picture_url" db:"avatar_url"`
}

// PostWithMeta - пост с полями автора, счётчиками и флагами текущего зрителя
type PostWithMeta struct {
	PostID        string    `json:"id" db:"post_id"`
	AuthorID      string    `json:"user_id" db:"author_id"`
	Content       string    `json:"content" db:"content"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	Username      string    `json:"username" db:"username"`
	AvatarURL     *string   `json:"profile_picture_url" db:"avatar_url"`
	LikeCount     int       `json:"like_count" db:"like_count"`
	LikedByMe     bool      `json:"liked_by_me" db:"liked_by_me"`
	RetweetCount  int       `json:"retweet_count" db:"retweet_count"`
	RetweetedByMe bool      `json:"retweeted_by_me" db:"retweeted_by_me"`
}

// RetweetWithMeta - ретвит вместе с оригинальным постом и обоими авторами
type RetweetWithMeta struct {
	RetweetID          string    `db:"retweet_id"`
	RetweeterID        string    `db:"retweeter_id"`
	RetweeterUsername  string    `db:"retweeter_username"`
	RetweeterAvatarURL *string   `db:"retweeter_avatar_url"`
	RetweetedAt        time.Time `db:"retweeted_at"`
	PostID             string    `db:"post_id"`
	AuthorID           string    `db:"author_id"`
	Content            string    `db:"content"`
	CreatedAt          time.Time `db:"created_at"`
	AuthorUsername     string    `db:"author_username"`
	AuthorAvatarURL    *string   `db:"author_avatar_url"`
	LikeCount          int       `db:"like_count"`
	LikedByMe          bool      `db:"liked_by_me"`
	RetweetCount       int       `db:"retweet_count"`
	RetweetedByMe      bool      `db:"retweeted_by_me"`
}

type FeedAuthor struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	AvatarURL *string `json:"profile_picture_url"`
}

type FeedPost struct {
	ID            string    `json:"id"`
	AuthorID      string    `json:"user_id"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"created_at"`
	LikeCount     int       `json:"like_count"`
	LikedByMe     bool      `json:"liked_by_me"`
	RetweetCount  int       `json:"retweet_count"`
	RetweetedByMe bool      `json:"retweeted_by_me"`
}

// FeedItem - единая форма элемента ленты: оригинальный пост или ретвит.
// SortTime не сериализуется, используется только для ранжирования.
type FeedItem struct {
	Type        string      `json:"type"`
	RetweetedAt *time.Time  `json:"retweeted_at,omitempty"`
	Retweeter   *FeedAuthor `json:"retweeter,omitempty"`
	Post        FeedPost    `json:"post"`
	Author      FeedAuthor  `json:"author"`
	SortTime    time.Time   `json:"-"`
}

const (
	FeedItemPost    = "post"
	FeedItemRetweet = "retweet"
)

// Profile - публичный профиль пользователя глазами зрителя
type Profile struct {
	UserID         string  `json:"id" db:"user_id"`
	Username       string  `json:"username" db:"username"`
	Bio            *string `json:"bio" db:"bio"`
	AvatarURL      *string `json:"profile_picture_url" db:"avatar_url"`
	FollowerCount  int     `json:"follower_count" db:"follower_count"`
	FollowingCount int     `json:"following_count" db:"following_count"`
	IsFollowing    bool    `json:"is_following" db:"is_following"`
}

// Account - приватная форма собственного аккаунта (/api/auth/me)
type Account struct {
	UserID    string  `json:"id" db:"user_id"`
	Username  string  `json:"username" db:"username"`
	Email     string  `json:"email" db:"email"`
	Bio       *string `json:"bio" db:"bio"`
	AvatarURL *string `json:"profile_picture_url" db:"avatar_url"`
}

type PasswordResetToken struct {
	Token     string    `json:"-" db:"token"`
	UserID    string    `json:"-" db:"user_id"`
	ExpiresAt time.Time `json:"-" db:"expires_at"`
}
