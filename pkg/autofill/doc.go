// Package autofill derives the slug and SEO title of detail pages from the
// object the page describes.
//
// Admin forms call these when an editor picks a category or committee, then
// write the result into the page's slug and SEO title inputs:
//
//	f, err := autofill.Category("R&D Oversight")
//	// f.Slug:     "category-r-and-d-oversight"
//	// f.SEOTitle: "Category: R&D Oversight"
//
//	f, err = autofill.Committee("ocd-organization/80b44839-0c06-4569-9337-4dda052f5cd5", "Armed Services")
//	// f.Slug:     "committee-80b44839-0c06-4569-9337-4dda052f5cd5"
//	// f.SEOTitle: "Armed Services"
//
// Category slugs go through slug.Make, so they match the identifiers
// generated server-side. Committee slugs reuse the OCD id verbatim.
package autofill
