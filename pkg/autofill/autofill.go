package autofill

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/adminkit/pkg/slug"
)

const (
	categoryPrefix  = "category"
	committeePrefix = "committee"

	// ocdOrganizationPrefix is the Open Civic Data namespace committee ids live under.
	ocdOrganizationPrefix = "ocd-organization/"

	// uuidLen is the length of the hyphenated form; braced and urn forms are rejected.
	uuidLen = 36
)

// Fields holds the values written into a detail page's slug and SEO title inputs.
type Fields struct {
	Slug     string `json:"slug"`
	SEOTitle string `json:"seo_title"`
}

// Category derives the fields for a category detail page from the selected
// category's display label: "Armed Services" -> "category-armed-services",
// "Category: Armed Services".
//
// Returns ErrEmptyLabel when the label has nothing to slugify.
func Category(label string) (Fields, error) {
	body := slug.Make(label)
	if body == "" {
		return Fields{}, fmt.Errorf("%w: %q", ErrEmptyLabel, label)
	}
	return Fields{
		Slug:     categoryPrefix + "-" + body,
		SEOTitle: "Category: " + label,
	}, nil
}

// CategoryID derives the fields from the category select's value instead of
// its label, as older page forms did: "12" -> "category-12", "Category 12".
func CategoryID(id string) (Fields, error) {
	body := slug.Make(id)
	if body == "" {
		return Fields{}, fmt.Errorf("%w: %q", ErrEmptyLabel, id)
	}
	return Fields{
		Slug:     categoryPrefix + "-" + body,
		SEOTitle: "Category " + id,
	}, nil
}

// Committee derives the fields for a committee detail page from the
// committee's OCD id and name. The slug matches CommitteeURLID, which keeps
// the id's case, so ids with upper-case hex digits are rejected rather than
// producing a slug the server would not match.
func Committee(ocdID, name string) (Fields, error) {
	id, ok := strings.CutPrefix(ocdID, ocdOrganizationPrefix)
	if !ok || len(id) != uuidLen || id != strings.ToLower(id) {
		return Fields{}, fmt.Errorf("%w: %q", ErrInvalidCommitteeID, ocdID)
	}
	if err := uuid.Validate(id); err != nil {
		return Fields{}, fmt.Errorf("%w: %q: %w", ErrInvalidCommitteeID, ocdID, err)
	}
	return Fields{
		Slug:     CommitteeURLID(ocdID),
		SEOTitle: name,
	}, nil
}

// CommitteeURLID strips the OCD namespace from a committee id so it can be
// used as a page slug: "ocd-organization/80b4...5cd5" -> "committee-80b4...5cd5".
// Ids without the namespace are used as is.
func CommitteeURLID(ocdID string) string {
	if i := strings.LastIndex(ocdID, ocdOrganizationPrefix); i >= 0 {
		ocdID = ocdID[i+len(ocdOrganizationPrefix):]
	}
	return committeePrefix + "-" + ocdID
}
