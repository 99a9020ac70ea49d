package contacts

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/avolkov/outreach/internal/entities"
)

func setupTestDB(t *testing.T) (*gorm.DB, *Repository, func()) {
	dbPath := "./test_contacts_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entities.Contact{},
		&entities.Note{},
	)
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return db, repo, cleanup
}

func createTestContact(t *testing.T, repo *Repository, userID, email string) *entities.Contact {
	contact := &entities.Contact{
		FirstName: "Test",
		Email:     email,
	}
	err := repo.Create(userID, contact)
	require.NoError(t, err)
	return contact
}

func TestRepository_Create(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	contact := &entities.Contact{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
		Tags:      entities.StringList{"VIP"},
	}
	err := repo.Create("user-1", contact)
	require.NoError(t, err)
	assert.NotZero(t, contact.ID)
	assert.Equal(t, "user-1", contact.UserID)

	var stored entities.Contact
	require.NoError(t, db.First(&stored, contact.ID).Error)
	assert.Equal(t, "john@example.com", stored.Email)
	assert.Equal(t, entities.StringList{"VIP"}, stored.Tags)
	// Unset lists are persisted as empty, never null
	assert.NotNil(t, []string(stored.Segments))
	assert.Empty(t, stored.Segments)
}

func TestRepository_Create_RequiresOwner(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	err := repo.Create("", &entities.Contact{Email: "john@example.com"})

	assert.Error(t, err)
}

func TestRepository_Create_RejectsInvalidEmail(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	for _, email := range []string{"", "not-an-email"} {
		err := repo.Create("user-1", &entities.Contact{FirstName: "X", Email: email})

		require.Error(t, err)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Problems, "email")
	}
}

func TestRepository_List(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	first := createTestContact(t, repo, "user-1", "first@example.com")
	time.Sleep(10 * time.Millisecond)
	second := createTestContact(t, repo, "user-1", "second@example.com")
	createTestContact(t, repo, "user-2", "other@example.com")

	contacts, err := repo.List("user-1")

	require.NoError(t, err)
	require.Len(t, contacts, 2)
	// Newest first
	assert.Equal(t, second.ID, contacts[0].ID)
	assert.Equal(t, first.ID, contacts[1].ID)
	for _, c := range contacts {
		assert.NotNil(t, []string(c.Tags))
		assert.NotNil(t, []string(c.Segments))
	}
}

func TestRepository_List_Empty(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	contacts, err := repo.List("nobody")

	require.NoError(t, err)
	assert.Empty(t, contacts)
}

func TestRepository_Update(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	contact := createTestContact(t, repo, "user-1", "john@example.com")

	company := "Acme Inc"
	tags := []string{"VIP", "Customer"}
	updated, err := repo.Update("user-1", contact.ID, ContactUpdate{
		Company: &company,
		Tags:    &tags,
	})

	require.NoError(t, err)
	assert.Equal(t, "Acme Inc", updated.Company)
	assert.Equal(t, entities.StringList{"VIP", "Customer"}, updated.Tags)
	// Fields without a value are left untouched
	assert.Equal(t, "john@example.com", updated.Email)
}

func TestRepository_Update_CrossOwner(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	contact := createTestContact(t, repo, "user-1", "john@example.com")

	name := "Hijacked"
	_, err := repo.Update("user-2", contact.ID, ContactUpdate{FirstName: &name})

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_Delete(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	mine := createTestContact(t, repo, "user-1", "mine@example.com")
	theirs := createTestContact(t, repo, "user-2", "theirs@example.com")

	deleted, err := repo.Delete("user-1", []uint{mine.ID, theirs.ID, 999})

	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	remaining, err := repo.List("user-2")
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestRepository_Delete_NoIDs(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	deleted, err := repo.Delete("user-1", nil)

	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestRepository_AddNote(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	contact := createTestContact(t, repo, "user-1", "john@example.com")

	note, err := repo.AddNote("user-1", contact.ID, "Met at the conference")

	require.NoError(t, err)
	assert.NotZero(t, note.ID)
	assert.Equal(t, "user-1", note.AuthorID)

	contacts, err := repo.List("user-1")
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	require.Len(t, contacts[0].Notes, 1)
	assert.Equal(t, "Met at the conference", contacts[0].Notes[0].Content)
}

func TestRepository_AddNote_CrossOwner(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	contact := createTestContact(t, repo, "user-1", "john@example.com")

	_, err := repo.AddNote("user-2", contact.ID, "Should not land")

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_AddTags(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	tagged := &entities.Contact{Email: "a@example.com", Tags: entities.StringList{"VIP"}}
	require.NoError(t, repo.Create("user-1", tagged))
	plain := createTestContact(t, repo, "user-1", "b@example.com")

	updated, err := repo.AddTags("user-1", []uint{tagged.ID, plain.ID}, []string{"VIP", "Customer"})

	require.NoError(t, err)
	assert.Equal(t, int64(2), updated)

	contacts, err := repo.List("user-1")
	require.NoError(t, err)
	for _, c := range contacts {
		switch c.ID {
		case tagged.ID:
			assert.Equal(t, entities.StringList{"VIP", "Customer"}, c.Tags)
		case plain.ID:
			assert.Equal(t, entities.StringList{"VIP", "Customer"}, c.Tags)
		}
	}
}

func TestRepository_AddTags_NoChange(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	tagged := &entities.Contact{Email: "a@example.com", Tags: entities.StringList{"VIP"}}
	require.NoError(t, repo.Create("user-1", tagged))

	updated, err := repo.AddTags("user-1", []uint{tagged.ID}, []string{"VIP"})

	require.NoError(t, err)
	assert.Zero(t, updated)
}

func TestRepository_AssignSegment(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	assigned := &entities.Contact{Email: "a@example.com", Segments: entities.StringList{"Enterprise"}}
	require.NoError(t, repo.Create("user-1", assigned))
	plain := createTestContact(t, repo, "user-1", "b@example.com")
	other := createTestContact(t, repo, "user-2", "c@example.com")

	updated, err := repo.AssignSegment("user-1", []uint{assigned.ID, plain.ID, other.ID}, "Enterprise")

	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)

	contacts, err := repo.List("user-2")
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Empty(t, contacts[0].Segments)
}
