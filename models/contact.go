package models

// ContactIdentifier carries the addressable identity of a contact. The only
// identifier type the engine produces is "email".
type ContactIdentifier struct {
	Type     string           `json:"type"`
	ID       string           `json:"id"`
	Channels *ContactChannels `json:"channels,omitempty"`
}

type ContactChannels struct {
	Email *ChannelStatus `json:"email,omitempty"`
}

type ChannelStatus struct {
	Status string `json:"status"`
}

// Contact channel statuses understood by the marketing API.
const (
	ContactStatusSubscribed    = "subscribed"
	ContactStatusUnsubscribed  = "unsubscribed"
	ContactStatusNonSubscribed = "nonSubscribed"
)

// CreateContactRequest is the contact document pushed on create, and the
// source of the identifier sent on patch-by-email.
type CreateContactRequest struct {
	Identifiers        []ContactIdentifier `json:"identifiers"`
	SendWelcomeMessage bool                `json:"sendWelcomeMessage,omitempty"`

	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	Country     string `json:"country,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
	State       string `json:"state,omitempty"`
	City        string `json:"city,omitempty"`
	Address     string `json:"address,omitempty"`
	PostalCode  string `json:"postalCode,omitempty"`
	Gender      string `json:"gender,omitempty"`
	BirthDate   string `json:"birthdate,omitempty"`
}

// Email returns the first email identifier, or "".
func (r CreateContactRequest) Email() string {
	for _, id := range r.Identifiers {
		if id.Type == "email" && id.ID != "" {
			return id.ID
		}
	}
	return ""
}

// NewContactRequest builds the identifier block for a subscription record.
// inactiveStatus is the channel status applied when the subscription is not
// active ("nonSubscribed" during bulk sync, "unsubscribed" on an explicit
// unsubscribe event).
func NewContactRequest(sub Subscription, inactiveStatus string, welcome bool) CreateContactRequest {
	status := ContactStatusSubscribed
	if !sub.Active {
		status = inactiveStatus
	}

	return CreateContactRequest{
		SendWelcomeMessage: welcome,
		Identifiers: []ContactIdentifier{{
			Type: "email",
			ID:   sub.Email,
			Channels: &ContactChannels{
				Email: &ChannelStatus{Status: status},
			},
		}},
	}
}

// ContactPatchRequest is the body of a patch-by-email call: identifiers only,
// the profile fields are left untouched.
type ContactPatchRequest struct {
	Identifiers []ContactIdentifier `json:"identifiers"`
}

// ContactInfo is the remote representation of a single contact.
type ContactInfo struct {
	ContactID   string              `json:"contactID"`
	Identifiers []ContactIdentifier `json:"identifiers"`
}

// Email returns the first non-empty identifier id, or "".
func (c ContactInfo) Email() string {
	for _, id := range c.Identifiers {
		if id.ID != "" {
			return id.ID
		}
	}
	return ""
}

// ContactsListResponse is the paged contact lookup result (used with limit=1
// for existence checks).
type ContactsListResponse struct {
	Contacts []ContactInfo `json:"contacts"`
}

// ContactProfilePatch carries customer profile fields for a patch-by-email
// call (fired when a registered customer updates their account).
type ContactProfilePatch struct {
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	Country     string `json:"country,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
	State       string `json:"state,omitempty"`
	City        string `json:"city,omitempty"`
	Address     string `json:"address,omitempty"`
	PostalCode  string `json:"postalCode,omitempty"`
	Gender      string `json:"gender,omitempty"`
	BirthDate   string `json:"birthdate,omitempty"`
}
