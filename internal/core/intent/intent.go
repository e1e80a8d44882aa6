// Package intent classifies free text fiber queries into coarse kinds used to
// pick a downstream retrieval strategy
package intent

import "strings"

// Kind labels what a query is asking for
type Kind string

const (
	// KindGeneral is the default when no rule fires
	KindGeneral Kind = "general"
	// KindProperty covers questions about fiber properties and specs
	KindProperty Kind = "property_inquiry"
	// KindManufacturing covers production, spinning, and treatment questions
	KindManufacturing Kind = "manufacturing_inquiry"
	// KindApplication covers "what is it used for" style questions
	KindApplication Kind = "application_inquiry"
	// KindComparison covers fiber vs fiber questions
	KindComparison Kind = "comparison"
	// KindIdentification covers "what is X" definition questions
	KindIdentification Kind = "identification"
	// KindCategory covers fiber class and category questions
	KindCategory Kind = "category_inquiry"
	// KindStructureImage covers requests for structure diagrams and images
	KindStructureImage Kind = "structure_image_request"
)

// Classification is the result of scanning a query against the kind rules
type Classification struct {
	Kind           Kind
	RequiresSearch bool
	NeedsImages    bool
}

// rule maps trigger phrases to a kind; rules are applied in order and a later
// rule overrides the kind of an earlier one, so the order here is contract,
// not style
type rule struct {
	kind     Kind
	triggers []string
	images   bool
}

var rules = []rule{
	{kind: KindProperty, triggers: []string{
		"property", "properties", "characteristic", "specifications",
	}},
	{kind: KindManufacturing, triggers: []string{
		"spinning", "manufacturing", "production", "process", "made",
		"produce", "treatment", "dyeing", "dye",
	}},
	{kind: KindApplication, triggers: []string{
		"use", "used for", "application", "suitable for", "best for", "find", "where",
	}},
	{kind: KindComparison, triggers: []string{
		"compare", "difference between", "vs", "versus", "better than",
	}},
	{kind: KindIdentification, triggers: []string{
		"identify", "what is", "what are", "define", "explain", "tell me about",
	}},
	{kind: KindCategory, triggers: []string{
		"natural", "synthetic", "cellulosic", "protein", "mineral", "fiber", "fibers",
	}},
	{kind: KindStructureImage, images: true, triggers: []string{
		"structure", "image", "diagram", "picture", "visual",
		"molecular structure", "chemical structure", "show me",
	}},
}

// Classify scans query for kind triggers. A blank query classifies as general
func Classify(query string) Classification {
	q := strings.ToLower(query)
	out := Classification{Kind: KindGeneral}
	for _, r := range rules {
		for _, trig := range r.triggers {
			if strings.Contains(q, trig) {
				out.Kind = r.kind
				out.RequiresSearch = true
				if r.images {
					out.NeedsImages = true
				}
				break
			}
		}
	}
	return out
}
