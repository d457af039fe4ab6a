package repository

import (
	"Reunite/internal/model"
	"Reunite/internal/pkg/database"
	"context"
	"sync"
	"testing"
	"time"

	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewMemoryDB()
	if err != nil {
		t.Fatalf("NewMemoryDB: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func seedCollege(t *testing.T, db *gorm.DB, name string) *model.College {
	t.Helper()
	c := &model.College{Name: name}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("create college: %v", err)
	}
	return c
}

func seedUser(t *testing.T, db *gorm.DB, name string, collegeID uint64, status string) *model.User {
	t.Helper()
	u := &model.User{
		Username:  name,
		Email:     name + "@example.com",
		Password:  "x",
		CollegeID: collegeID,
		Status:    status,
		Role:      model.RoleUser,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func seedPost(t *testing.T, db *gorm.DB, userID, collegeID uint64, specific bool, content string) *model.Post {
	t.Helper()
	p := &model.Post{UserID: userID, CollegeID: collegeID, IsCollegeSpecific: specific, Content: content}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("create post: %v", err)
	}
	return p
}

func TestUserRepoLookups(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepo(db)
	ctx := context.Background()
	c := seedCollege(t, db, "MIT")
	u := seedUser(t, db, "alice", c.ID, model.StatusPending)

	got, err := repo.GetUserByEmail(ctx, "alice@example.com")
	if err != nil || got == nil || got.ID != u.ID {
		t.Fatalf("GetUserByEmail = %+v, %v", got, err)
	}
	missing, err := repo.GetUserById(ctx, 999)
	if err != nil || missing != nil {
		t.Fatalf("GetUserById(missing) = %+v, %v", missing, err)
	}

	exists, err := repo.ExistsByEmailOrUsername(ctx, "other@example.com", "alice")
	if err != nil || !exists {
		t.Fatalf("ExistsByEmailOrUsername = %v, %v", exists, err)
	}

	dup := &model.User{Username: "alice", Email: "new@example.com", Password: "x", CollegeID: c.ID}
	if err := repo.CreateUser(ctx, dup); !IsDuplicateKey(err) {
		t.Fatalf("duplicate username err = %v", err)
	}
}

func TestUpdateStatusIfPending(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepo(db)
	ctx := context.Background()
	c := seedCollege(t, db, "MIT")
	u := seedUser(t, db, "bob", c.ID, model.StatusPending)

	n, err := repo.UpdateStatusIfPending(ctx, u.ID, model.StatusActive)
	if err != nil || n != 1 {
		t.Fatalf("first update = %d, %v", n, err)
	}
	n, err = repo.UpdateStatusIfPending(ctx, u.ID, model.StatusDeactive)
	if err != nil || n != 0 {
		t.Fatalf("second update = %d, %v", n, err)
	}

	got, _ := repo.GetUserById(ctx, u.ID)
	if got.Status != model.StatusActive {
		t.Fatalf("status = %q", got.Status)
	}
}

func TestListPendingAndBacklog(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepo(db)
	ctx := context.Background()
	c := seedCollege(t, db, "MIT")
	seedUser(t, db, "p1", c.ID, model.StatusPending)
	seedUser(t, db, "a1", c.ID, model.StatusActive)
	old := seedUser(t, db, "p2", c.ID, model.StatusPending)
	db.Model(old).UpdateColumn("created_at", time.Now().Add(-96*time.Hour))

	pending, err := repo.ListPendingUsers(ctx)
	if err != nil {
		t.Fatalf("ListPendingUsers: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("pending = %d, want 2", len(pending))
	}
	if pending[0].College == nil || pending[0].College.Name != "MIT" {
		t.Fatal("college not preloaded")
	}

	n, err := repo.CountPendingOlderThan(ctx, time.Now().Add(-72*time.Hour))
	if err != nil || n != 1 {
		t.Fatalf("CountPendingOlderThan = %d, %v", n, err)
	}
}

func TestDeleteUserCascade(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepo(db)
	actions := NewPostActionRepo(db)
	ctx := context.Background()
	c := seedCollege(t, db, "MIT")
	alice := seedUser(t, db, "alice", c.ID, model.StatusActive)
	bob := seedUser(t, db, "bob", c.ID, model.StatusActive)

	alicePost := seedPost(t, db, alice.ID, c.ID, false, "alice post")
	bobPost := seedPost(t, db, bob.ID, c.ID, false, "bob post")

	_, _ = actions.ToggleLike(ctx, bob.ID, alicePost.ID)
	_, _ = actions.ToggleLike(ctx, alice.ID, bobPost.ID)
	_ = actions.CreateComment(ctx, &model.Comment{PostID: alicePost.ID, UserID: bob.ID, Text: "hi"})
	_ = actions.CreateComment(ctx, &model.Comment{PostID: bobPost.ID, UserID: alice.ID, Text: "yo"})
	_ = actions.CreateComment(ctx, &model.Comment{PostID: bobPost.ID, UserID: bob.ID, Text: "self"})

	if err := users.DeleteUserCascade(ctx, alice.ID); err != nil {
		t.Fatalf("DeleteUserCascade: %v", err)
	}

	var posts, likes, comments int64
	db.Model(&model.Post{}).Count(&posts)
	db.Model(&model.Like{}).Count(&likes)
	db.Model(&model.Comment{}).Count(&comments)
	if posts != 1 || likes != 0 || comments != 1 {
		t.Fatalf("after cascade posts=%d likes=%d comments=%d", posts, likes, comments)
	}

	if err := users.DeleteUserCascade(ctx, alice.ID); err != gorm.ErrRecordNotFound {
		t.Fatalf("second delete err = %v", err)
	}
}

func TestFeedsAndAggregate(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	actions := NewPostActionRepo(db)
	ctx := context.Background()
	mit := seedCollege(t, db, "MIT")
	iit := seedCollege(t, db, "IIT Delhi")
	alice := seedUser(t, db, "alice", mit.ID, model.StatusActive)
	bob := seedUser(t, db, "bob", iit.ID, model.StatusActive)

	g1 := seedPost(t, db, alice.ID, mit.ID, false, "general one")
	db.Model(g1).UpdateColumn("created_at", time.Now().Add(-time.Hour))
	g2 := seedPost(t, db, bob.ID, iit.ID, false, "general two")
	seedPost(t, db, alice.ID, mit.ID, true, "mit only")
	seedPost(t, db, bob.ID, iit.ID, true, "iit only")

	general, err := repo.ListGeneral(ctx)
	if err != nil {
		t.Fatalf("ListGeneral: %v", err)
	}
	if len(general) != 2 || general[0].ID != g2.ID || general[1].ID != g1.ID {
		t.Fatalf("general feed order wrong: %+v", general)
	}

	mitFeed, err := repo.ListCollegeSpecific(ctx, mit.ID)
	if err != nil {
		t.Fatalf("ListCollegeSpecific: %v", err)
	}
	if len(mitFeed) != 1 || mitFeed[0].Content != "mit only" {
		t.Fatalf("mit feed = %+v", mitFeed)
	}

	_, _ = actions.ToggleLike(ctx, bob.ID, g1.ID)
	_ = actions.CreateComment(ctx, &model.Comment{PostID: g1.ID, UserID: bob.ID, Text: "first"})
	_ = actions.CreateComment(ctx, &model.Comment{PostID: g1.ID, UserID: alice.ID, Text: "second"})

	post, err := repo.GetPost(ctx, g1.ID)
	if err != nil || post == nil {
		t.Fatalf("GetPost = %v, %v", post, err)
	}
	if post.User == nil || post.User.Username != "alice" || post.User.Password != "" {
		t.Fatalf("author not preloaded safely: %+v", post.User)
	}
	if post.College == nil || post.College.Name != "MIT" {
		t.Fatal("college not preloaded")
	}
	if len(post.Likes) != 1 || post.Likes[0].User == nil || post.Likes[0].User.Username != "bob" {
		t.Fatalf("likes = %+v", post.Likes)
	}
	if len(post.Comments) != 2 || post.Comments[0].Text != "first" || post.Comments[1].User.Username != "alice" {
		t.Fatalf("comments = %+v", post.Comments)
	}

	list, total, err := repo.ListByUser(ctx, alice.ID, false, 5, 0)
	if err != nil || total != 1 || len(list) != 1 {
		t.Fatalf("ListByUser = %d, %d, %v", len(list), total, err)
	}

	if err := repo.DeletePost(ctx, g1.ID); err != nil {
		t.Fatalf("DeletePost: %v", err)
	}
	if n, _ := actions.GetCommentCountByPostID(ctx, g1.ID); n != 0 {
		t.Fatalf("comments left after delete: %d", n)
	}
	if p, _ := repo.GetPost(ctx, g1.ID); p != nil {
		t.Fatal("post still present")
	}
}

func TestToggleLike(t *testing.T) {
	db := newTestDB(t)
	actions := NewPostActionRepo(db)
	ctx := context.Background()
	c := seedCollege(t, db, "MIT")
	u := seedUser(t, db, "alice", c.ID, model.StatusActive)
	p := seedPost(t, db, u.ID, c.ID, false, "post")

	liked, err := actions.ToggleLike(ctx, u.ID, p.ID)
	if err != nil || !liked {
		t.Fatalf("first toggle = %v, %v", liked, err)
	}
	liked, err = actions.ToggleLike(ctx, u.ID, p.ID)
	if err != nil || liked {
		t.Fatalf("second toggle = %v, %v", liked, err)
	}
	if n, _ := actions.GetLikeCountByPostID(ctx, p.ID); n != 0 {
		t.Fatalf("count = %d after unlike", n)
	}
}

func TestToggleLikeConcurrentNeverDuplicates(t *testing.T) {
	db := newTestDB(t)
	actions := NewPostActionRepo(db)
	ctx := context.Background()
	c := seedCollege(t, db, "MIT")
	u := seedUser(t, db, "alice", c.ID, model.StatusActive)
	p := seedPost(t, db, u.ID, c.ID, false, "post")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := actions.ToggleLike(ctx, u.ID, p.ID); err != nil {
				t.Errorf("ToggleLike: %v", err)
			}
		}()
	}
	wg.Wait()

	if n, _ := actions.GetLikeCountByPostID(ctx, p.ID); n > 1 {
		t.Fatalf("duplicate likes: %d", n)
	}
}

func TestCollegeRepo(t *testing.T) {
	db := newTestDB(t)
	repo := NewCollegeRepo(db)
	ctx := context.Background()
	for _, name := range []string{"Stanford", "Harvard", "MIT"} {
		if err := repo.Create(ctx, &model.College{Name: name}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	list, err := repo.List(ctx)
	if err != nil || len(list) != 3 || list[0].Name != "Harvard" {
		t.Fatalf("List = %+v, %v", list, err)
	}

	if err := repo.Create(ctx, &model.College{Name: "MIT"}); !IsDuplicateKey(err) {
		t.Fatalf("duplicate college err = %v", err)
	}

	seedUser(t, db, "alice", list[1].ID, model.StatusActive)
	refs, err := repo.CountReferences(ctx, list[1].ID)
	if err != nil || refs != 1 {
		t.Fatalf("CountReferences = %d, %v", refs, err)
	}

	n, err := repo.Delete(ctx, list[0].ID)
	if err != nil || n != 1 {
		t.Fatalf("Delete = %d, %v", n, err)
	}
	if got, _ := repo.GetById(ctx, list[0].ID); got != nil {
		t.Fatal("college still present")
	}
}
