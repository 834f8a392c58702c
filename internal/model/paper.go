package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Placeholder used for structured summary fields when the completion is unparsable
const SummaryPlaceholder = "Summary generation in progress..."

// PaperSummary holds the four fields requested from the model
type PaperSummary struct {
	KeyFindings string `json:"keyFindings" bson:"keyFindings"`
	Methodology string `json:"methodology" bson:"methodology"`
	Conclusions string `json:"conclusions" bson:"conclusions"`
	FullSummary string `json:"fullSummary" bson:"fullSummary"`
}

// Paper is an uploaded research paper with its summary
type Paper struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	User             primitive.ObjectID `json:"user" bson:"user"`
	Title            string             `json:"title" bson:"title"`
	OriginalFileName string             `json:"originalFileName" bson:"originalFileName"`
	FileURL          string             `json:"fileUrl" bson:"fileUrl"`
	BlobID           string             `json:"-" bson:"blobId,omitempty"`
	Summary          PaperSummary       `json:"summary" bson:"summary"`
	Category         string             `json:"category" bson:"category"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
}
