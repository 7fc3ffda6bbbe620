package models

// TrustTier 는 외부 인용 출처의 신뢰 등급이다.
type TrustTier string

const (
	TierPrimary   TrustTier = "Primary"
	TierSecondary TrustTier = "Secondary"
)

// AuthoritySource is a trusted external citation source.
// Collection: authority_sources
type AuthoritySource struct {
	ID        string    `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Domain    string    `bson:"domain" json:"domain"`
	URL       string    `bson:"url" json:"url"`
	TrustTier TrustTier `bson:"trust_tier" json:"trust_tier"`
	IsActive  bool      `bson:"is_active" json:"is_active"`
	SortOrder int       `bson:"sort_order" json:"sort_order"`
}
