package entity

import "strings"

// BusinessDomain is the coarse business category detected from a prompt.
// It seasons both the generation instructions and image search queries.
type BusinessDomain string

const (
	DomainGym        BusinessDomain = "gym"
	DomainMedical    BusinessDomain = "medical"
	DomainRestaurant BusinessDomain = "restaurant"
	DomainCafe       BusinessDomain = "cafe"
	DomainEducation  BusinessDomain = "education"
	DomainTechnology BusinessDomain = "technology"
	DomainEcommerce  BusinessDomain = "ecommerce"
	DomainTravel     BusinessDomain = "travel"
	DomainFinance    BusinessDomain = "finance"
	DomainRealEstate BusinessDomain = "realestate"
	DomainBusiness   BusinessDomain = "business"
)

// detection order matters: earlier rules win on mixed prompts.
var domainRules = []struct {
	domain   BusinessDomain
	keywords []string
}{
	{DomainGym, []string{"gym", "fitness", "workout"}},
	{DomainMedical, []string{"hospital", "medical", "healthcare"}},
	{DomainRestaurant, []string{"restaurant", "food", "dining"}},
	{DomainCafe, []string{"cafe", "coffee"}},
	{DomainEducation, []string{"school", "university", "education"}},
	{DomainTechnology, []string{"technology", "software", "tech"}},
	{DomainEcommerce, []string{"ecommerce", "shop", "store"}},
	{DomainTravel, []string{"travel", "hotel", "tourism"}},
	{DomainFinance, []string{"finance", "bank", "investment"}},
	{DomainRealEstate, []string{"real estate", "property", "realty"}},
}

// DetectDomain classifies a free-form prompt into a BusinessDomain,
// defaulting to the generic business profile.
func DetectDomain(prompt string) BusinessDomain {
	lower := strings.ToLower(prompt)
	for _, rule := range domainRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.domain
			}
		}
	}
	return DomainBusiness
}

// DomainKeywords holds search seasoning terms per business domain, most
// relevant first. Image queries use the top two.
var DomainKeywords = map[BusinessDomain][]string{
	DomainGym:        {"fitness", "workout", "exercise", "training", "gym", "weights", "cardio"},
	DomainMedical:    {"medical", "healthcare", "doctor", "hospital", "clinic", "health"},
	DomainRestaurant: {"food", "restaurant", "cuisine", "dining", "chef", "kitchen"},
	DomainCafe:       {"coffee", "cafe", "restaurant", "drinks", "pastry", "dining"},
	DomainEducation:  {"education", "school", "university", "student", "learning", "campus"},
	DomainTechnology: {"technology", "computer", "digital", "innovation", "software", "tech"},
	DomainEcommerce:  {"shopping", "retail", "store", "product", "commerce", "online"},
	DomainTravel:     {"travel", "tourism", "vacation", "destination", "hotel", "journey"},
	DomainFinance:    {"finance", "banking", "money", "investment", "business", "professional"},
	DomainRealEstate: {"property", "house", "home", "real estate", "building", "architecture"},
	DomainBusiness:   {"business", "professional", "corporate", "office", "team", "modern"},
}
