package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DbName = "event_management_db"

// Collection names are fixed for compatibility with existing data.
const (
	EventsColName       = "events"
	AttendeesColName    = "attendees"
	VenuesColName       = "venues"
	BookingsColName     = "bookings"
	EventPostersColName = "event_posters"
	PromoVideosColName  = "promo_videos"
	VenuePhotosColName  = "venue_photos"
)

type Event struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name         string             `bson:"name" json:"name" validate:"required"`
	Description  string             `bson:"description" json:"description" validate:"required"`
	Date         string             `bson:"date" json:"date" validate:"required"`
	VenueID      string             `bson:"venue_id" json:"venue_id" validate:"required"`
	MaxAttendees int                `bson:"max_attendees" json:"max_attendees" validate:"required,min=1"`
}

type Attendee struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name  string             `bson:"name" json:"name" validate:"required"`
	Email string             `bson:"email" json:"email" validate:"required,email"`
	Phone string             `bson:"phone,omitempty" json:"phone,omitempty"`
}

type Venue struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string             `bson:"name" json:"name" validate:"required"`
	Address  string             `bson:"address" json:"address" validate:"required"`
	Capacity int                `bson:"capacity" json:"capacity" validate:"required,min=1"`
}

// Booking references events and attendees by plain id strings. The ids are
// not parsed or checked against the referenced collections.
type Booking struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	EventID    string             `bson:"event_id" json:"event_id" validate:"required"`
	AttendeeID string             `bson:"attendee_id" json:"attendee_id" validate:"required"`
	TicketType string             `bson:"ticket_type" json:"ticket_type" validate:"required"`
	Quantity   int                `bson:"quantity" json:"quantity" validate:"required,min=1"`
}

func (e *Event) SetID(id primitive.ObjectID)    { e.ID = id }
func (a *Attendee) SetID(id primitive.ObjectID) { a.ID = id }
func (v *Venue) SetID(id primitive.ObjectID)    { v.ID = id }
func (b *Booking) SetID(id primitive.ObjectID)  { b.ID = id }

// FileRecord holds one uploaded media file. Records are append-only: a new
// upload for the same parent shadows older ones, retrieval always picks the
// latest uploaded_at. The parent id field name varies per collection
// (event_id or venue_id), so it is written by the file store rather than
// tagged here.
type FileRecord struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Filename    string             `bson:"filename" json:"filename"`
	ContentType string             `bson:"content_type" json:"content_type"`
	Content     []byte             `bson:"content" json:"-"`
	UploadedAt  time.Time          `bson:"uploaded_at" json:"uploaded_at"`
}
