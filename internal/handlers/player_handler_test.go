package handlers_test

import (
	"ContinuumLoot/internal/model"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestPlayer_List(t *testing.T) {
	r := newTestRepos()
	router := newTestRouter(t, r)

	r.players.On("ListPlayers", mock.Anything).Return([]model.Player{
		{
			ID: 1, Name: "Alice", Class: "PR", Role: "H", Rank: model.RankRaider, IsActive: true,
			Wishlist:   []model.WishlistEntry{{ID: 3, PlayerID: 1, ItemID: 100, Priority: 1}},
			Attendance: []model.RaidDay{{ID: 20}},
		},
	}, nil).Once()

	// списки публичные, логин не нужен
	req := httptest.NewRequest(http.MethodGet, "/api/getPlayers", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp []map[string]any
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	if assert.Len(t, resp, 1) {
		assert.Equal(t, "Alice", resp[0]["name"])
		assert.Equal(t, "PR", resp[0]["class"]) // наружу уходит код класса
		assert.Equal(t, []any{float64(20)}, resp[0]["attendance"])
		wl := resp[0]["wishlist"].([]any)
		if assert.Len(t, wl, 1) {
			entry := wl[0].(map[string]any)
			assert.Equal(t, float64(100), entry["item_id"])
			assert.Equal(t, float64(1), entry["prio"])
		}
	}
}

func TestPlayer_UpdateOwnCharacter(t *testing.T) {
	r := newTestRepos()
	router := newTestRouter(t, r)

	pid := int64(5)
	r.expectCaller(&model.User{ID: 2, PermissionLevel: model.PermissionMember, PlayerID: &pid})

	current := &model.Player{
		ID: 5, Name: "Dave", Class: "PR", Role: "H", Rank: model.RankMember,
		Wishlist: []model.WishlistEntry{{ID: 11, PlayerID: 5, ItemID: 100, Priority: 1}},
	}
	r.players.On("GetPlayerByID", mock.Anything, int64(5)).Return(current, nil).Once()

	// члену гильдии доступны только notes и role
	r.players.On("UpdatePlayerFields", mock.Anything, int64(5), map[string]any{
		"notes": "on vacation",
		"role":  "D",
	}).Return(nil).Once()

	// вишлист выверяется: пара (100,1) сохраняется, (200,2) добавляется
	r.players.On("AddWishlistEntries", mock.Anything, []model.WishlistEntry{
		{PlayerID: 5, ItemID: 200, Priority: 2},
	}).Return(nil).Once()
	r.players.On("DeleteWishlistEntries", mock.Anything, []int64(nil)).Return(nil).Once()

	body := `{"player":{"id":5,"name":"Hacked","notes":"on vacation","class":"WR","role":"D","rank":80,
		"wishlist":[{"item_id":100,"prio":1},{"item_id":200,"prio":2}]}}`
	req := httptest.NewRequest(http.MethodPost, "/api/updatePlayer", strings.NewReader(body))
	addAuthCookie(t, req, 2)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	r.players.AssertExpectations(t)
	// name/class/rank и посещаемость члену гильдии не доступны
	r.players.AssertNotCalled(t, "ReplaceAttendance", mock.Anything, mock.Anything, mock.Anything)
}

func TestPlayer_UpdateSomeoneElseDenied(t *testing.T) {
	r := newTestRepos()
	router := newTestRouter(t, r)

	pid := int64(5)
	r.expectCaller(&model.User{ID: 2, PermissionLevel: model.PermissionMember, PlayerID: &pid})

	body := `{"player":{"id":6,"notes":"grief"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/updatePlayer", strings.NewReader(body))
	addAuthCookie(t, req, 2)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	r.players.AssertNotCalled(t, "UpdatePlayerFields", mock.Anything, mock.Anything, mock.Anything)
}

func TestPlayer_UpdateAsAdminTouchesCoreFields(t *testing.T) {
	r := newTestRepos()
	router := newTestRouter(t, r)

	r.expectCaller(&model.User{ID: 1, PermissionLevel: model.PermissionAdmin})
	r.players.On("GetPlayerByID", mock.Anything, int64(6)).Return(&model.Player{ID: 6, Name: "Zug"}, nil).Once()
	r.players.On("UpdatePlayerFields", mock.Anything, int64(6), map[string]any{
		"notes":        "",
		"role":         "T",
		"name":         "Zug",
		"player_class": "WR",
		"rank":         model.RankRaider,
	}).Return(nil).Once()
	r.players.On("AddWishlistEntries", mock.Anything, []model.WishlistEntry(nil)).Return(nil).Once()
	r.players.On("DeleteWishlistEntries", mock.Anything, []int64(nil)).Return(nil).Once()
	r.players.On("ReplaceAttendance", mock.Anything, int64(6), []int64{20, 21}).Return(nil).Once()

	body := `{"player":{"id":6,"name":"zug","class":"WR","role":"T","rank":47,"attendance":[20,21]}}`
	req := httptest.NewRequest(http.MethodPost, "/api/updatePlayer", strings.NewReader(body))
	addAuthCookie(t, req, 1)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	r.players.AssertExpectations(t)
}

func TestPlayer_UpdateWithEmptyNameKeepsStoredName(t *testing.T) {
	r := newTestRepos()
	router := newTestRouter(t, r)

	r.expectCaller(&model.User{ID: 1, PermissionLevel: model.PermissionAdmin})
	r.players.On("GetPlayerByID", mock.Anything, int64(6)).Return(&model.Player{ID: 6, Name: "Zug"}, nil).Once()

	// имя не пришло — колонка name не трогается
	r.players.On("UpdatePlayerFields", mock.Anything, int64(6), map[string]any{
		"notes":        "promoted",
		"role":         "T",
		"player_class": "WR",
		"rank":         model.RankCoreRaider,
	}).Return(nil).Once()
	r.players.On("AddWishlistEntries", mock.Anything, []model.WishlistEntry(nil)).Return(nil).Once()
	r.players.On("DeleteWishlistEntries", mock.Anything, []int64(nil)).Return(nil).Once()
	r.players.On("ReplaceAttendance", mock.Anything, int64(6), []int64(nil)).Return(nil).Once()

	body := `{"player":{"id":6,"notes":"promoted","class":"WR","role":"T","rank":50}}`
	req := httptest.NewRequest(http.MethodPost, "/api/updatePlayer", strings.NewReader(body))
	addAuthCookie(t, req, 1)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	r.players.AssertExpectations(t)
}

func TestPlayer_UploadAttendance(t *testing.T) {
	r := newTestRepos()
	router := newTestRouter(t, r)

	r.expectCaller(&model.User{ID: 1, PermissionLevel: model.PermissionAdmin})

	day := &model.RaidDay{ID: 30, Name: "Tuesday MC", Date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), RaidID: 2}
	r.raids.On("GetRaidByID", mock.Anything, int64(2)).Return(&model.Raid{ID: 2, Name: "Molten Core", ShortName: "MC"}, nil).Once()
	r.raids.On("CreateRaidDay", mock.Anything, mock.MatchedBy(func(d *model.RaidDay) bool {
		return d.Name == "Tuesday MC" && d.RaidID == 2 && d.Date.Format("2006-01-02") == "2024-03-05"
	})).Return(day, nil).Once()

	known := &model.Player{ID: 5, Name: "Ormgar", IsActive: true}
	r.players.On("GetPlayerByName", mock.Anything, "Ormgar").Return(known, nil).Once()
	r.players.On("GetPlayerByName", mock.Anything, "Newbie").Return((*model.Player)(nil), gorm.ErrRecordNotFound).Once()

	// незнакомое имя заводит нового игрока рангом Pug
	created := &model.Player{ID: 9, Name: "Newbie", IsActive: true}
	r.players.On("CreatePlayer", mock.Anything, mock.MatchedBy(func(p *model.Player) bool {
		return p.Name == "Newbie" && p.Class == "MG" && p.Rank == model.RankPug
	})).Return(created, nil).Once()

	r.players.On("AddAttendance", mock.Anything, int64(5), int64(30)).Return(nil).Once()
	r.players.On("AddAttendance", mock.Anything, int64(9), int64(30)).Return(nil).Once()

	// пересчёт активности после батча
	r.raids.On("ListRaidDays", mock.Anything).Return([]model.RaidDay{*day}, nil).Once()
	r.players.On("ListPlayers", mock.Anything).Return([]model.Player{
		{ID: 5, Name: "Ormgar", IsActive: true, Attendance: []model.RaidDay{{ID: 30}}},
		{ID: 9, Name: "Newbie", IsActive: true, Attendance: []model.RaidDay{{ID: 30}}},
	}, nil).Once()

	body := `{"data":"Ormgar-Shaman,Newbie-Mage","raid_day_id":"New","raid_id":2,"raid_day_name":"Tuesday MC","date":"2024-03-05"}`
	req := httptest.NewRequest(http.MethodPost, "/api/uploadAttendance", strings.NewReader(body))
	addAuthCookie(t, req, 1)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	r.players.AssertExpectations(t)
	r.raids.AssertExpectations(t)
}

func TestPlayer_UploadAttendanceUnknownRaidRejected(t *testing.T) {
	r := newTestRepos()
	router := newTestRouter(t, r)

	r.expectCaller(&model.User{ID: 1, PermissionLevel: model.PermissionAdmin})
	r.raids.On("GetRaidByID", mock.Anything, int64(999)).Return((*model.Raid)(nil), gorm.ErrRecordNotFound).Once()

	// новый день для несуществующего рейда — 400, а не ошибка БД
	body := `{"data":"Ormgar-Shaman","raid_day_id":"New","raid_id":999,"raid_day_name":"Ghost Raid","date":"2024-03-05"}`
	req := httptest.NewRequest(http.MethodPost, "/api/uploadAttendance", strings.NewReader(body))
	addAuthCookie(t, req, 1)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	r.raids.AssertNotCalled(t, "CreateRaidDay", mock.Anything, mock.Anything)
}

func TestPlayer_UploadAttendanceDeniedForOfficer(t *testing.T) {
	r := newTestRepos()
	router := newTestRouter(t, r)

	r.expectCaller(&model.User{ID: 2, PermissionLevel: model.PermissionOfficer})

	body := `{"data":"Ormgar","raid_day_id":30}`
	req := httptest.NewRequest(http.MethodPost, "/api/uploadAttendance", strings.NewReader(body))
	addAuthCookie(t, req, 2)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	r.raids.AssertNotCalled(t, "GetRaidDayByID", mock.Anything, mock.Anything)
}
