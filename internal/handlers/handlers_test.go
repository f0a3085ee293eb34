package handlers_test

import (
	"ContinuumLoot/internal/config"
	"ContinuumLoot/internal/handlers"
	"ContinuumLoot/internal/middleware"
	"ContinuumLoot/internal/model"
	"ContinuumLoot/internal/repo"
	"ContinuumLoot/internal/service"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// --- Mocks ---

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserRepo) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserRepo) GetUserByPlayerID(ctx context.Context, playerID int64) (*model.User, error) {
	args := m.Called(ctx, playerID)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserRepo) ListUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.User); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserRepo) UpdatePermissionLevel(ctx context.Context, id int64, level int) error {
	return m.Called(ctx, id, level).Error(0)
}
func (m *mockUserRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

type mockPlayerRepo struct{ mock.Mock }

func (m *mockPlayerRepo) ListPlayers(ctx context.Context) ([]model.Player, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Player); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockPlayerRepo) GetPlayerByID(ctx context.Context, id int64) (*model.Player, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Player); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockPlayerRepo) GetPlayerByName(ctx context.Context, name string) (*model.Player, error) {
	args := m.Called(ctx, name)
	if v, ok := args.Get(0).(*model.Player); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockPlayerRepo) CreatePlayer(ctx context.Context, p *model.Player) (*model.Player, error) {
	args := m.Called(ctx, p)
	if v, ok := args.Get(0).(*model.Player); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockPlayerRepo) UpdatePlayerFields(ctx context.Context, id int64, fields map[string]any) error {
	return m.Called(ctx, id, fields).Error(0)
}
func (m *mockPlayerRepo) AddWishlistEntries(ctx context.Context, entries []model.WishlistEntry) error {
	return m.Called(ctx, entries).Error(0)
}
func (m *mockPlayerRepo) DeleteWishlistEntries(ctx context.Context, ids []int64) error {
	return m.Called(ctx, ids).Error(0)
}
func (m *mockPlayerRepo) DeleteWishlistFor(ctx context.Context, playerID, itemID int64) error {
	return m.Called(ctx, playerID, itemID).Error(0)
}
func (m *mockPlayerRepo) ReplaceAttendance(ctx context.Context, playerID int64, raidDayIDs []int64) error {
	return m.Called(ctx, playerID, raidDayIDs).Error(0)
}
func (m *mockPlayerRepo) AddAttendance(ctx context.Context, playerID, raidDayID int64) error {
	return m.Called(ctx, playerID, raidDayID).Error(0)
}
func (m *mockPlayerRepo) SetActive(ctx context.Context, playerID int64, active bool) error {
	return m.Called(ctx, playerID, active).Error(0)
}

var _ repo.PlayerRepository = (*mockPlayerRepo)(nil)

type mockItemRepo struct{ mock.Mock }

func (m *mockItemRepo) ListItems(ctx context.Context) ([]model.Item, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockItemRepo) GetItemByID(ctx context.Context, id int64) (*model.Item, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockItemRepo) CreateItem(ctx context.Context, item *model.Item) (*model.Item, error) {
	args := m.Called(ctx, item)
	if v, ok := args.Get(0).(*model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockItemRepo) UpdateItemFields(ctx context.Context, id int64, fields map[string]any) error {
	return m.Called(ctx, id, fields).Error(0)
}
func (m *mockItemRepo) AddClassPrios(ctx context.Context, prios []model.ClassPrio) error {
	return m.Called(ctx, prios).Error(0)
}
func (m *mockItemRepo) DeleteClassPrios(ctx context.Context, ids []int64) error {
	return m.Called(ctx, ids).Error(0)
}
func (m *mockItemRepo) AddIndividualPrios(ctx context.Context, prios []model.IndividualPrio) error {
	return m.Called(ctx, prios).Error(0)
}
func (m *mockItemRepo) DeleteIndividualPrios(ctx context.Context, ids []int64) error {
	return m.Called(ctx, ids).Error(0)
}
func (m *mockItemRepo) DeleteIndividualPrioFor(ctx context.Context, playerID, itemID int64) error {
	return m.Called(ctx, playerID, itemID).Error(0)
}

var _ repo.ItemRepository = (*mockItemRepo)(nil)

type mockRaidRepo struct{ mock.Mock }

func (m *mockRaidRepo) ListRaids(ctx context.Context) ([]model.Raid, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Raid); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockRaidRepo) GetRaidByID(ctx context.Context, id int64) (*model.Raid, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Raid); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockRaidRepo) ListRaidDays(ctx context.Context) ([]model.RaidDay, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.RaidDay); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockRaidRepo) GetRaidDayByID(ctx context.Context, id int64) (*model.RaidDay, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.RaidDay); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockRaidRepo) CreateRaidDay(ctx context.Context, day *model.RaidDay) (*model.RaidDay, error) {
	args := m.Called(ctx, day)
	if v, ok := args.Get(0).(*model.RaidDay); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockRaidRepo) CreateRaid(ctx context.Context, raid *model.Raid) (*model.Raid, error) {
	args := m.Called(ctx, raid)
	if v, ok := args.Get(0).(*model.Raid); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockRaidRepo) CreateBoss(ctx context.Context, boss *model.Boss) (*model.Boss, error) {
	args := m.Called(ctx, boss)
	if v, ok := args.Get(0).(*model.Boss); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.RaidRepository = (*mockRaidRepo)(nil)

type mockLootRepo struct{ mock.Mock }

func (m *mockLootRepo) ListLootHistory(ctx context.Context) ([]model.LootHistory, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.LootHistory); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockLootRepo) CreateLootHistory(ctx context.Context, line *model.LootHistory) (*model.LootHistory, error) {
	args := m.Called(ctx, line)
	if v, ok := args.Get(0).(*model.LootHistory); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockLootRepo) UpdateLootHistory(ctx context.Context, line *model.LootHistory) error {
	return m.Called(ctx, line).Error(0)
}
func (m *mockLootRepo) DeleteLootHistory(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.LootRepository = (*mockLootRepo)(nil)

// --- Helpers ---

const testSecret = "test-secret"

type testRepos struct {
	users   *mockUserRepo
	players *mockPlayerRepo
	items   *mockItemRepo
	raids   *mockRaidRepo
	loot    *mockLootRepo
}

func newTestRepos() *testRepos {
	return &testRepos{
		users:   new(mockUserRepo),
		players: new(mockPlayerRepo),
		items:   new(mockItemRepo),
		raids:   new(mockRaidRepo),
		loot:    new(mockLootRepo),
	}
}

func newTestRouter(t *testing.T, r *testRepos) http.Handler {
	t.Helper()
	cfg := &config.Config{AuthSecret: testSecret, AttendanceWindow: 6, DefaultClass: "Warrior"}
	logger := zap.NewNop().Sugar()

	userSvc := service.NewUserService(r.users, r.players)
	playerSvc := service.NewPlayerService(r.players, r.raids, cfg, logger)
	itemSvc := service.NewItemService(r.items)
	raidSvc := service.NewRaidService(r.raids)
	lootSvc := service.NewLootService(r.loot, r.items, r.players, r.raids, playerSvc, logger)

	h := handlers.NewHandler(userSvc, playerSvc, itemSvc, raidSvc, lootSvc, logger, cfg)
	return h.Router
}

func addAuthCookie(t *testing.T, req *http.Request, userID int64) {
	t.Helper()
	rr := httptest.NewRecorder()
	_ = middleware.SetLoginCookie(rr, userID, testSecret)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
}

// expectCaller настраивает загрузку учётной записи текущей сессии.
func (r *testRepos) expectCaller(u *model.User) {
	r.users.On("GetUserByID", mock.Anything, u.ID).Return(u, nil)
}
