package pipeline

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"testing"

	"linerelay/models"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/require"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.DB().SetMaxOpenConns(1)
	db.AutoMigrate(&models.Setting{}, &models.Signature{}, &models.Message{}, &models.Task{})
	t.Cleanup(func() { db.Close() })
	return db
}

func signBody(secret, body string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(body))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
