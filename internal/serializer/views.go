// Package serializer projects storage models onto wire shapes. Each view
// is an explicit struct so a model field never leaks onto the wire by
// omission; in particular user password hashes and capability tokens stay
// out of every response except the caller's own login.
package serializer

import (
	"github.com/google/uuid"
	"github.com/outreachhub/outreachhub/internal/model"
)

type TagView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Red   int       `json:"red"`
	Green int       `json:"green"`
	Blue  int       `json:"blue"`
}

func Tag(t model.Tag) TagView {
	return TagView{ID: t.ID, Name: t.Name, Red: t.ColorRed, Green: t.ColorGreen, Blue: t.ColorBlue}
}

func Tags(ts []model.Tag) []TagView {
	views := make([]TagView, 0, len(ts))
	for _, t := range ts {
		views = append(views, Tag(t))
	}
	return views
}

type ResourceView struct {
	ID     uuid.UUID `json:"id"`
	Type   int       `json:"type"`
	Name   string    `json:"name"`
	Amount int       `json:"amount"`
}

func Resource(r model.Resource) ResourceView {
	return ResourceView{ID: r.ID, Type: int(r.Type), Name: r.Name, Amount: r.Amount}
}

func Resources(rs []model.Resource) []ResourceView {
	views := make([]ResourceView, 0, len(rs))
	for _, r := range rs {
		views = append(views, Resource(r))
	}
	return views
}

type IndividualView struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
}

func Individual(i model.Individual) IndividualView {
	return IndividualView{ID: i.ID, FirstName: i.FirstName, LastName: i.LastName, Email: i.Email, Phone: i.Phone}
}

type PartnerView struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Type        int            `json:"type"`
	Email       string         `json:"email"`
	Phone       string         `json:"phone"`
	ImageURL    *string        `json:"image_url"`
	Individual  IndividualView `json:"individual"`
	Tags        []TagView      `json:"tags"`
	Resources   []ResourceView `json:"resources"`
}

func Partner(p model.Partner) PartnerView {
	return PartnerView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Type:        int(p.Type),
		Email:       p.Email,
		Phone:       p.Phone,
		ImageURL:    p.ImageURL,
		Individual:  Individual(p.Individual),
		Tags:        Tags(p.Tags),
		Resources:   Resources(p.Resources),
	}
}

func Partners(ps []model.Partner) []PartnerView {
	views := make([]PartnerView, 0, len(ps))
	for _, p := range ps {
		views = append(views, Partner(p))
	}
	return views
}

// PartnerSummaryView is the shape partners take when nested under an
// event: identification only, no contact sub-records.
type PartnerSummaryView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Type int       `json:"type"`
}

type EventView struct {
	ID          uuid.UUID            `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Date        string               `json:"date"`
	StartTime   string               `json:"start_time"`
	EndTime     string               `json:"end_time"`
	Partners    []PartnerSummaryView `json:"partners"`
}

func Event(e model.Event) EventView {
	partners := make([]PartnerSummaryView, 0, len(e.Partners))
	for _, p := range e.Partners {
		partners = append(partners, PartnerSummaryView{ID: p.ID, Name: p.Name, Type: int(p.Type)})
	}
	return EventView{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Date:        e.Date.Format("2006-01-02"),
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		Partners:    partners,
	}
}

func Events(es []model.Event) []EventView {
	views := make([]EventView, 0, len(es))
	for _, e := range es {
		views = append(views, Event(e))
	}
	return views
}

type UserView struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      int    `json:"role"`
}

func User(u model.User) UserView {
	return UserView{
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      int(u.Role),
	}
}

func Users(us []model.User) []UserView {
	views := make([]UserView, 0, len(us))
	for _, u := range us {
		views = append(views, User(u))
	}
	return views
}

// SessionView is the login response: the caller's own profile plus the
// capability token every later request presents. This is the only place
// the token crosses the wire.
type SessionView struct {
	UserView
	Token        string `json:"token"`
	Organization string `json:"organization"`
}

func Session(u *model.User) SessionView {
	return SessionView{
		UserView:     User(*u),
		Token:        u.Hash,
		Organization: u.Organization.Name,
	}
}

type OrganizationView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Message     *string   `json:"message"`
	MessageIcon *int      `json:"message_icon"`
}

func Organization(o model.Organization) OrganizationView {
	return OrganizationView{ID: o.ID, Name: o.Name, Message: o.Message, MessageIcon: o.MessageIcon}
}
