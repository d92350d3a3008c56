package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/socialblog/backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with default values and no social links.
// Returns the persisted domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUserWithRole(t, pool, domain.RoleUser)
}

// SeedAdmin creates a user carrying the ADMIN role.
func SeedAdmin(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUserWithRole(t, pool, domain.RoleAdmin)
}

func seedUserWithRole(t *testing.T, pool *pgxpool.Pool, role domain.Role) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	user := domain.User{
		Username: "testuser-" + suffix,
		Email:    "testuser-" + suffix + "@example.com",
		Nickname: "Test User " + suffix,
		Role:     role,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO users (username, email, nickname, role, password_hash)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, following, followers, saved_posts, created_at, updated_at`,
		user.Username, user.Email, user.Nickname, role.String(), "x",
	).Scan(&user.ID, &user.Following, &user.Followers, &user.SavedPosts, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedCategory creates a category with a unique name and slug.
func SeedCategory(t *testing.T, pool *pgxpool.Pool) domain.Category {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	cat := domain.Category{
		Name: "Category " + suffix,
		Slug: "category-" + suffix,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO categories (name, slug) VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		cat.Name, cat.Slug,
	).Scan(&cat.ID, &cat.CreatedAt, &cat.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory insert: %v", err)
	}

	return cat
}

// SeedPost creates a post owned by ownerID in the given category.
func SeedPost(t *testing.T, pool *pgxpool.Pool, ownerID, categoryID uuid.UUID) domain.Post {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	post := domain.Post{
		Title:      "Post " + suffix,
		Excerpt:    "Excerpt " + suffix,
		Body:       "Body " + suffix,
		Slug:       "post-" + suffix,
		OwnerID:    ownerID,
		CategoryID: categoryID,
		Tags:       []string{"seed"},
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO posts (title, excerpt, body, slug, owner_id, category_id, tags)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, likes, comment_ids, is_blocked, view_count, created_at, updated_at`,
		post.Title, post.Excerpt, post.Body, post.Slug, post.OwnerID, post.CategoryID, post.Tags,
	).Scan(&post.ID, &post.Likes, &post.CommentIDs, &post.IsBlocked, &post.ViewCount, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedPost insert: %v", err)
	}

	return post
}

// SeedComment creates a root comment on the post and links it into the
// post's comment list, the way the comment service does.
func SeedComment(t *testing.T, pool *pgxpool.Pool, ownerID, postID uuid.UUID) domain.Comment {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	c := domain.Comment{
		Content: "Comment " + suffix,
		OwnerID: ownerID,
		PostID:  postID,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO comments (content, owner_id, post_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, child_ids, likes, created_at, updated_at`,
		c.Content, c.OwnerID, c.PostID,
	).Scan(&c.ID, &c.ChildIDs, &c.Likes, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedComment insert: %v", err)
	}

	_, err = pool.Exec(ctx,
		`UPDATE posts SET comment_ids = array_append(comment_ids, $2) WHERE id = $1`,
		postID, c.ID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedComment link to post: %v", err)
	}

	return c
}

// SeedReply creates a reply under parent and links it into the parent's
// child list.
func SeedReply(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, parent domain.Comment) domain.Comment {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	c := domain.Comment{
		Content:         "Reply " + suffix,
		OwnerID:         ownerID,
		PostID:          parent.PostID,
		ParentCommentID: &parent.ID,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO comments (content, owner_id, post_id, parent_comment_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, child_ids, likes, created_at, updated_at`,
		c.Content, c.OwnerID, c.PostID, parent.ID,
	).Scan(&c.ID, &c.ChildIDs, &c.Likes, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedReply insert: %v", err)
	}

	_, err = pool.Exec(ctx,
		`UPDATE comments SET child_ids = array_append(child_ids, $2) WHERE id = $1`,
		parent.ID, c.ID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedReply link to parent: %v", err)
	}

	return c
}
