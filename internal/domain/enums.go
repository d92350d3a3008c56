package domain

// Role represents the authorization level of a user.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	}
	return false
}

// ResourceKind is the discriminator carried by every authorizable entity.
// Ability rules dispatch on it rather than on the Go type of the value.
type ResourceKind string

const (
	KindUser     ResourceKind = "USER"
	KindPost     ResourceKind = "POST"
	KindComment  ResourceKind = "COMMENT"
	KindCategory ResourceKind = "CATEGORY"
)

func (k ResourceKind) String() string { return string(k) }

func (k ResourceKind) IsValid() bool {
	switch k {
	case KindUser, KindPost, KindComment, KindCategory:
		return true
	}
	return false
}

// ParentKind identifies the container a comment is attached to.
type ParentKind string

const (
	ParentPost    ParentKind = "POST"
	ParentComment ParentKind = "COMMENT"
)

func (p ParentKind) String() string { return string(p) }

func (p ParentKind) IsValid() bool {
	switch p {
	case ParentPost, ParentComment:
		return true
	}
	return false
}

// PostSort selects the ordering of a post listing.
type PostSort string

const (
	// SortNewest orders by creation time, newest first.
	SortNewest PostSort = "NEWEST"
	// SortPopular orders by view count, most viewed first.
	SortPopular PostSort = "POPULAR"
)

func (s PostSort) String() string { return string(s) }

func (s PostSort) IsValid() bool {
	switch s {
	case SortNewest, SortPopular:
		return true
	}
	return false
}
