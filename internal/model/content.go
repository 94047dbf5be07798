package model

import "time"

// Category classifies uploaded content
type Category string

const (
	CategoryVideo       Category = "Video"
	CategoryScript      Category = "Script"
	CategoryPodcast     Category = "Podcast"
	CategoryArticle     Category = "Article"
	CategoryChannelPlan Category = "Channel Plan"
)

// Categories lists every category in display order
var Categories = []Category{
	CategoryVideo,
	CategoryScript,
	CategoryPodcast,
	CategoryArticle,
	CategoryChannelPlan,
}

// Author identifies a creator or commenter
type Author struct {
	Name      string `json:"name" bson:"name" yaml:"name"`
	AvatarURL string `json:"avatarUrl" bson:"avatarUrl" yaml:"avatarUrl"`
}

// CommunityComment is a comment left by another user on a content item
type CommunityComment struct {
	ID         string    `json:"id" bson:"id" yaml:"id"`
	Author     Author    `json:"author" bson:"author" yaml:"author"`
	Comment    string    `json:"comment" bson:"comment" yaml:"comment"`
	Likes      int       `json:"likes" bson:"likes" yaml:"likes"`
	Dislikes   int       `json:"dislikes" bson:"dislikes" yaml:"dislikes"`
	IsAccepted bool      `json:"isAccepted" bson:"isAccepted" yaml:"isAccepted"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt" yaml:"createdAt"`
}

// Content is a published item. AIFeedback is attached once at publish time.
type Content struct {
	ID                string             `json:"id" bson:"_id,omitempty" yaml:"id"`
	Title             string             `json:"title" bson:"title" yaml:"title"`
	Description       string             `json:"description" bson:"description" yaml:"description"`
	Category          Category           `json:"category" bson:"category" yaml:"category"`
	Content           string             `json:"content" bson:"content" yaml:"content"`
	VideoURL          string             `json:"videoUrl,omitempty" bson:"videoUrl,omitempty" yaml:"videoUrl,omitempty"`
	Author            Author             `json:"author" bson:"author" yaml:"author"`
	ThumbnailURL      string             `json:"thumbnailUrl" bson:"thumbnailUrl" yaml:"thumbnailUrl"`
	CreatedAt         time.Time          `json:"createdAt" bson:"createdAt" yaml:"createdAt"`
	AIFeedback        *AIFeedback        `json:"aiFeedback,omitempty" bson:"aiFeedback,omitempty" yaml:"aiFeedback,omitempty"`
	CommunityFeedback []CommunityComment `json:"communityFeedback" bson:"communityFeedback" yaml:"communityFeedback"`
}
