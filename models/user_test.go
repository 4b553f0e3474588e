package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "open sqlite database")
	return db
}

func TestSetPassword_HashesPassword(t *testing.T) {
	user := &User{Email: "alice@example.com"}

	err := user.SetPassword("secret")
	assert.NoError(t, err, "set password")
	assert.NotEmpty(t, user.HashedPassword, "hashed password")
	assert.NotEqual(t, "secret", user.HashedPassword, "hash differs from plaintext")
}

func TestCheckPassword_VerifiesRoundTrip(t *testing.T) {
	user := &User{Email: "alice@example.com"}
	require.NoError(t, user.SetPassword("secret"))

	assert.True(t, user.CheckPassword("secret"), "correct password")
	assert.False(t, user.CheckPassword("wrong"), "wrong password")
}

func TestSetPassword_DistinctHashesPerCall(t *testing.T) {
	a := &User{}
	b := &User{}
	require.NoError(t, a.SetPassword("secret"))
	require.NoError(t, b.SetPassword("secret"))

	// bcrypt salts every hash
	assert.NotEqual(t, a.HashedPassword, b.HashedPassword, "salted hashes")
}

func TestUserJSON_OmitsPasswordHash(t *testing.T) {
	user := &User{ID: 1, Email: "alice@example.com", IsActive: true}
	require.NoError(t, user.SetPassword("secret"))

	raw, err := json.Marshal(user)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.NotContains(t, decoded, "hashed_password", "hash not serialized")
	assert.Equal(t, "alice@example.com", decoded["email"], "email serialized")
	assert.Equal(t, true, decoded["is_active"], "is_active serialized")
}

func TestMigrateUserModels_CreatesTables(t *testing.T) {
	db := newTestDB(t)

	err := MigrateUserModels(db)
	assert.NoError(t, err, "migrate user models")

	assert.True(t, db.Migrator().HasTable(&User{}), "users table")
	assert.True(t, db.Migrator().HasTable(&Item{}), "items table")
}

func TestUser_UniqueEmail(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, MigrateUserModels(db))

	first := User{Email: "dup@example.com", HashedPassword: "x"}
	require.NoError(t, db.Create(&first).Error)

	second := User{Email: "dup@example.com", HashedPassword: "y"}
	err := db.Create(&second).Error
	assert.Error(t, err, "duplicate email rejected")
}

func TestUser_PreloadsItems(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, MigrateUserModels(db))

	user := User{Email: "owner@example.com", HashedPassword: "x", IsActive: true}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&Item{Title: "mac", Description: "m2", OwnerID: user.ID}).Error)

	var got User
	require.NoError(t, db.Preload("Items").First(&got, user.ID).Error)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "mac", got.Items[0].Title)
	assert.Equal(t, user.ID, got.Items[0].OwnerID)
}
