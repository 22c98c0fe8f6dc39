package autofill_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/adminkit/pkg/autofill"
	"github.com/dmitrymomot/adminkit/pkg/slug"
)

const committeeUUID = "80b44839-0c06-4569-9337-4dda052f5cd5"

func TestCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		label    string
		expected autofill.Fields
	}{
		{
			label:    "Armed Services",
			expected: autofill.Fields{Slug: "category-armed-services", SEOTitle: "Category: Armed Services"},
		},
		{
			label:    "R&D Oversight",
			expected: autofill.Fields{Slug: "category-r-and-d-oversight", SEOTitle: "Category: R&D Oversight"},
		},
		{
			label:    "Café Policy",
			expected: autofill.Fields{Slug: "category-cafe-policy", SEOTitle: "Category: Café Policy"},
		},
		{
			label:    "Category 5",
			expected: autofill.Fields{Slug: "category-category-5", SEOTitle: "Category: Category 5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			t.Parallel()

			f, err := autofill.Category(tt.label)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, f)
			assert.True(t, slug.Valid(f.Slug))
		})
	}

	t.Run("empty label", func(t *testing.T) {
		t.Parallel()

		for _, label := range []string{"", "   ", "!!!", "Привет"} {
			_, err := autofill.Category(label)
			require.ErrorIs(t, err, autofill.ErrEmptyLabel, "label %q", label)
		}
	})
}

func TestCategoryID(t *testing.T) {
	t.Parallel()

	f, err := autofill.CategoryID("12")
	require.NoError(t, err)
	assert.Equal(t, autofill.Fields{Slug: "category-12", SEOTitle: "Category 12"}, f)

	f, err = autofill.CategoryID("Sub Category")
	require.NoError(t, err)
	assert.Equal(t, "category-sub-category", f.Slug)

	_, err = autofill.CategoryID("")
	require.ErrorIs(t, err, autofill.ErrEmptyLabel)
}

func TestCommittee(t *testing.T) {
	t.Parallel()

	t.Run("valid id", func(t *testing.T) {
		t.Parallel()

		f, err := autofill.Committee("ocd-organization/"+committeeUUID, "Armed Services")
		require.NoError(t, err)
		assert.Equal(t, autofill.Fields{
			Slug:     "committee-" + committeeUUID,
			SEOTitle: "Armed Services",
		}, f)
		assert.True(t, slug.Valid(f.Slug))
	})

	invalid := map[string]string{
		"empty":          "",
		"no namespace":   committeeUUID,
		"wrong prefix":   "ocd-person/" + committeeUUID,
		"empty suffix":   "ocd-organization/",
		"not a uuid":     "ocd-organization/armed-services",
		"braced uuid":    "ocd-organization/{" + committeeUUID + "}",
		"trailing path":  "ocd-organization/" + committeeUUID + "/x",
		"urn form":       "ocd-organization/urn:uuid:" + committeeUUID,
		"bad hex digits": "ocd-organization/zzzzzzzz-0c06-4569-9337-4dda052f5cd5",
		"upper-case hex": "ocd-organization/" + strings.ToUpper(committeeUUID),
		"mixed-case hex": "ocd-organization/80B44839-0c06-4569-9337-4dda052f5cd5",
	}
	for name, id := range invalid {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := autofill.Committee(id, "Name")
			require.ErrorIs(t, err, autofill.ErrInvalidCommitteeID)
		})
	}
}

func TestCommitteeURLID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "committee-"+committeeUUID, autofill.CommitteeURLID("ocd-organization/"+committeeUUID))
	assert.Equal(t, "committee-"+committeeUUID, autofill.CommitteeURLID(committeeUUID))
}

func TestCommitteeSlugsAreValid(t *testing.T) {
	t.Parallel()

	ids := []string{
		"ocd-organization/" + committeeUUID,
		"ocd-organization/" + strings.ToUpper(committeeUUID),
		"ocd-organization/00000000-0000-0000-0000-000000000000",
		"ocd-organization/ffffffff-ffff-ffff-ffff-ffffffffffff",
		"ocd-organization/FFFFFFFF-FFFF-FFFF-FFFF-FFFFFFFFFFFF",
	}
	for _, id := range ids {
		f, err := autofill.Committee(id, "Name")
		if err != nil {
			continue
		}
		assert.True(t, slug.Valid(f.Slug), "slug %q from %q", f.Slug, id)
	}
}
