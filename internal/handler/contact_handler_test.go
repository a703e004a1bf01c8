package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"vivah/internal/database"
	"vivah/internal/models"
	"vivah/internal/repository"
	"vivah/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newHandlerTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

// asUser stands in for the auth middleware in tests.
func asUser(id uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", id)
		c.Next()
	}
}

func setupContactRouter(t *testing.T, db *gorm.DB, viewerID uint) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	limRepo := repository.NewLimitationRepository(db)
	h := NewContactHandler(
		repository.NewContactRepository(db, limRepo),
		repository.NewUserRepository(db),
		service.NewFormatter("https://assets.test"),
		service.NewNotificationService(repository.NewNotificationRepository(db)),
	)
	r := gin.New()
	r.POST("/contacts/:id/unlock", asUser(viewerID), h.Unlock)
	return r
}

func unlockReq(r *gin.Engine, targetID uint) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/contacts/"+strconv.Itoa(int(targetID))+"/unlock", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestUnlockRequiresActivePackage(t *testing.T) {
	db := newHandlerTestDB(t)

	viewer := models.User{Name: "Viewer", Email: "v@test.local", Mobile: "+911", Status: "ACTIVE"}
	require.NoError(t, db.Create(&viewer).Error)
	target := models.User{Name: "Target", Email: "t@test.local", Mobile: "+912", Status: "ACTIVE"}
	require.NoError(t, db.Create(&target).Error)

	r := setupContactRouter(t, db, viewer.ID)
	w := unlockReq(r, target.ID)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUnlockChargesOnceThenFree(t *testing.T) {
	db := newHandlerTestDB(t)

	pkg := models.Package{Name: "SILVER", PriceCents: 49900, ValidityDays: 30}
	require.NoError(t, db.Create(&pkg).Error)
	expiry := time.Now().AddDate(0, 0, 30)
	viewer := models.User{Name: "Viewer", Email: "v@test.local", Mobile: "+911", Status: "ACTIVE", PackageID: &pkg.ID, PackageExpiry: &expiry}
	require.NoError(t, db.Create(&viewer).Error)
	target := models.User{Name: "Target", Email: "t@test.local", Mobile: "+912", Status: "ACTIVE"}
	require.NoError(t, db.Create(&target).Error)
	require.NoError(t, db.Create(&models.UserLimitation{UserID: viewer.ID, ContactViewLimit: 1}).Error)

	r := setupContactRouter(t, db, viewer.ID)

	w := unlockReq(r, target.ID)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Mobile string `json:"mobile"`
			Email  string `json:"email"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "+912", resp.Data.Mobile)
	assert.Equal(t, "t@test.local", resp.Data.Email)

	// Credit exhausted, but re-unlocking the same member stays free.
	w = unlockReq(r, target.ID)
	assert.Equal(t, http.StatusOK, w.Code)

	var lim models.UserLimitation
	require.NoError(t, db.Where("user_id = ?", viewer.ID).First(&lim).Error)
	assert.Equal(t, 0, lim.ContactViewLimit)

	// The target gets a notification only for the first unlock.
	var notifs int64
	require.NoError(t, db.Model(&models.Notification{}).Where("user_id = ?", target.ID).Count(&notifs).Error)
	assert.EqualValues(t, 1, notifs)
}

func TestUnlockExhaustedCredits(t *testing.T) {
	db := newHandlerTestDB(t)

	pkg := models.Package{Name: "SILVER", PriceCents: 49900, ValidityDays: 30}
	require.NoError(t, db.Create(&pkg).Error)
	expiry := time.Now().AddDate(0, 0, 30)
	viewer := models.User{Name: "Viewer", Email: "v@test.local", Mobile: "+911", Status: "ACTIVE", PackageID: &pkg.ID, PackageExpiry: &expiry}
	require.NoError(t, db.Create(&viewer).Error)
	target := models.User{Name: "Target", Email: "t@test.local", Mobile: "+912", Status: "ACTIVE"}
	require.NoError(t, db.Create(&target).Error)
	require.NoError(t, db.Create(&models.UserLimitation{UserID: viewer.ID, ContactViewLimit: 0}).Error)

	r := setupContactRouter(t, db, viewer.ID)
	w := unlockReq(r, target.ID)
	assert.Equal(t, http.StatusPaymentRequired, w.Code)
}

func TestUnlockSelfRejected(t *testing.T) {
	db := newHandlerTestDB(t)
	viewer := models.User{Name: "Viewer", Email: "v@test.local", Mobile: "+911", Status: "ACTIVE"}
	require.NoError(t, db.Create(&viewer).Error)

	r := setupContactRouter(t, db, viewer.ID)
	w := unlockReq(r, viewer.ID)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestUnlockUnknownMember(t *testing.T) {
	db := newHandlerTestDB(t)
	viewer := models.User{Name: "Viewer", Email: "v@test.local", Mobile: "+911", Status: "ACTIVE"}
	require.NoError(t, db.Create(&viewer).Error)

	r := setupContactRouter(t, db, viewer.ID)
	w := unlockReq(r, viewer.ID+100)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
