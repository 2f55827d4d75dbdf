package api

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// SearchResult is the first page of a user search
type SearchResult struct {
	TotalCount        int           `json:"total_count"`
	IncompleteResults bool          `json:"incomplete_results"`
	Items             []UserSummary `json:"items"`
}

// UserSummary is one search hit
type UserSummary struct {
	Login     string  `json:"login"`
	ID        int64   `json:"id"`
	Type      string  `json:"type"`
	HTMLURL   string  `json:"html_url"`
	AvatarURL string  `json:"avatar_url"`
	Score     float64 `json:"score"`
}

// String returns the login, which is what selection lists show
func (u UserSummary) String() string {
	return u.Login
}

// UserProfile is the full account record. Optional fields are nil when
// the API omitted them or sent null.
type UserProfile struct {
	Login           string     `json:"login"`
	ID              *int64     `json:"id,omitempty"`
	Type            *string    `json:"type,omitempty"`
	Name            *string    `json:"name,omitempty"`
	Company         *string    `json:"company,omitempty"`
	Blog            *string    `json:"blog,omitempty"`
	Location        *string    `json:"location,omitempty"`
	Email           *string    `json:"email,omitempty"`
	Bio             *string    `json:"bio,omitempty"`
	TwitterUsername *string    `json:"twitter_username,omitempty"`
	PublicRepos     *int       `json:"public_repos,omitempty"`
	PublicGists     *int       `json:"public_gists,omitempty"`
	Followers       *int       `json:"followers,omitempty"`
	Following       *int       `json:"following,omitempty"`
	HTMLURL         *string    `json:"html_url,omitempty"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
}

// Field is one labelled line of a rendered profile
type Field struct {
	Label string
	Value string
}

// Fields returns the present profile fields in display order.
// The login and name form the header and are not included.
func (p UserProfile) Fields() []Field {
	var fields []Field
	addString := func(label string, v *string) {
		if v != nil && strings.TrimSpace(*v) != "" {
			fields = append(fields, Field{label, strings.TrimSpace(*v)})
		}
	}
	addCount := func(label string, v *int) {
		if v != nil {
			fields = append(fields, Field{label, humanize.Comma(int64(*v))})
		}
	}

	addString("Bio", p.Bio)
	addString("Company", p.Company)
	addString("Location", p.Location)
	addString("Email", p.Email)
	addString("Blog", p.Blog)
	if p.TwitterUsername != nil && *p.TwitterUsername != "" {
		fields = append(fields, Field{"Twitter", "@" + *p.TwitterUsername})
	}
	addCount("Followers", p.Followers)
	addCount("Following", p.Following)
	addCount("Repos", p.PublicRepos)
	addCount("Gists", p.PublicGists)
	if p.CreatedAt != nil {
		fields = append(fields, Field{"Joined", fmt.Sprintf("%s (%s)", p.CreatedAt.Format("2006-01-02"), humanize.Time(*p.CreatedAt))})
	}
	addString("URL", p.HTMLURL)
	return fields
}

// Header returns "login (name)", or just the login when no name is set
func (p UserProfile) Header() string {
	if p.Name != nil && strings.TrimSpace(*p.Name) != "" {
		return fmt.Sprintf("%s (%s)", p.Login, strings.TrimSpace(*p.Name))
	}
	return p.Login
}

// String renders the profile as plain text
func (p UserProfile) String() string {
	var sb strings.Builder
	sb.WriteString(p.Header())
	for _, f := range p.Fields() {
		sb.WriteString(fmt.Sprintf("\n%-10s %s", f.Label+":", f.Value))
	}
	return sb.String()
}
