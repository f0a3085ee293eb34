package service

import (
	"ContinuumLoot/internal/model"
	"ContinuumLoot/internal/repo"
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

// Доменные конфликты аутентификации. Хендлер отдаёт их телом
// {"error": ...} со статусом 200 — клиент смотрит в payload.
var (
	ErrAlreadySignedUp  = errors.New("Character Already Signed Up")
	ErrCharacterMissing = errors.New("Character Does Not Exist")
	ErrWrongPassword    = errors.New("Incorrect Password")
)

var titleCaser = cases.Title(language.English)

// NormalizeName приводит имя персонажа к канонической форме: "dAvId" → "David".
func NormalizeName(name string) string {
	return titleCaser.String(strings.ToLower(strings.TrimSpace(name)))
}

// UserService инкапсулирует работу с учётными записями и сессиями.
type UserService struct {
	users   repo.UserRepository
	players repo.PlayerRepository
}

func NewUserService(users repo.UserRepository, players repo.PlayerRepository) *UserService {
	return &UserService{users: users, players: players}
}

// SignupRequest — вход операции signup.
type SignupRequest struct {
	New        bool   `json:"new"`
	PlayerName string `json:"player_name"`
	PlayerID   int64  `json:"player_id"`
	Class      string `json:"class"`
	Role       string `json:"role"`
	Password   string `json:"password"`
}

// Signup регистрирует учётную запись и привязывает её к персонажу:
// либо к новому (new=true, персонаж создаётся, если имя свободно),
// либо к существующему незаклеймленному (new=false + player_id).
// Возвращает созданную учётную запись (для сессии) и публичную запись персонажа.
func (s *UserService) Signup(ctx context.Context, req SignupRequest) (*model.User, *CurrentPlayerDTO, error) {
	if req.Password == "" {
		return nil, nil, fmt.Errorf("%w: password required", ErrInvalid)
	}

	var player *model.Player
	var err error

	if req.New {
		if req.PlayerName == "" {
			return nil, nil, fmt.Errorf("%w: player_name required", ErrInvalid)
		}
		player, err = s.players.GetPlayerByName(ctx, req.PlayerName)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			// Ожидаемо, если персонаж действительно новый
			player, err = s.players.CreatePlayer(ctx, &model.Player{
				Name:     NormalizeName(req.PlayerName),
				Class:    classCode(req.Class),
				Role:     roleCode(req.Role),
				Rank:     model.RankTrial,
				IsActive: true,
			})
			if err != nil {
				return nil, nil, err
			}
		case err != nil:
			return nil, nil, err
		}
	} else {
		player, err = s.players.GetPlayerByID(ctx, req.PlayerID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrCharacterMissing
		}
		if err != nil {
			return nil, nil, err
		}
	}

	// У персонажа может быть максимум одна учётная запись
	if _, err := s.users.GetUserByPlayerID(ctx, player.ID); err == nil {
		return nil, nil, ErrAlreadySignedUp
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	user, err := s.users.CreateUser(ctx, &model.User{
		Username:        strings.ToLower(player.Name),
		Password:        string(hash),
		PermissionLevel: model.PermissionMember,
		PlayerID:        &player.ID,
	})
	if err != nil {
		return nil, nil, err
	}

	return user, &CurrentPlayerDTO{
		ID:              player.ID,
		Name:            player.Name,
		PermissionLevel: user.PermissionLevel,
	}, nil
}

// Login проверяет пароль и возвращает публичную запись персонажа.
// UserID результата кладётся в сессионный cookie хендлером.
func (s *UserService) Login(ctx context.Context, playerName, password string) (*model.User, *CurrentPlayerDTO, error) {
	user, err := s.users.GetUserByUsername(ctx, strings.ToLower(strings.TrimSpace(playerName)))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, ErrCharacterMissing
	}
	if err != nil {
		return nil, nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, nil, ErrWrongPassword
	}

	return user, currentPlayerOf(user), nil
}

// CurrentPlayer возвращает персонажа сессии или nil, если сессия
// больше ни на что не указывает. Никогда не считает это ошибкой.
func (s *UserService) CurrentPlayer(ctx context.Context, userID int64) (*CurrentPlayerDTO, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return currentPlayerOf(user), nil
}

// ListUsers — список учётных записей, только для офицеров и выше.
func (s *UserService) ListUsers(ctx context.Context, caller *model.User) ([]UserDTO, error) {
	if err := Allowed(caller, ActionViewUsers, 0); err != nil {
		return nil, err
	}
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]UserDTO, 0, len(users))
	for i := range users {
		out = append(out, UserToDTO(&users[i]))
	}
	return out, nil
}

// SetPermissionLevel меняет уровень доступа учётной записи.
func (s *UserService) SetPermissionLevel(ctx context.Context, caller *model.User, userID int64, level int) error {
	if err := Allowed(caller, ActionEditUsers, 0); err != nil {
		return err
	}
	if level < model.PermissionMember || level > model.PermissionAdmin {
		return fmt.Errorf("%w: unknown permission level %d", ErrInvalid, level)
	}
	return s.users.UpdatePermissionLevel(ctx, userID, level)
}

// ResetPassword ставит новый пароль учётной записи.
func (s *UserService) ResetPassword(ctx context.Context, caller *model.User, userID int64, password string) error {
	if err := Allowed(caller, ActionEditUsers, 0); err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("%w: password required", ErrInvalid)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, userID, string(hash))
}

// GetUser загружает учётную запись вызывающего; несуществующая — nil без ошибки.
func (s *UserService) GetUser(ctx context.Context, userID int64) (*model.User, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return user, err
}

func currentPlayerOf(user *model.User) *CurrentPlayerDTO {
	if user.Player == nil {
		return nil
	}
	return &CurrentPlayerDTO{
		ID:              user.Player.ID,
		Name:            user.Player.Name,
		PermissionLevel: user.PermissionLevel,
	}
}

// classCode переводит "Paladin" в код класса "PL"; неизвестное — Warrior.
func classCode(name string) string {
	if code, ok := model.ClassCodes[NormalizeName(name)]; ok {
		return code
	}
	return model.ClassCodes["Warrior"]
}

// roleCode переводит "Healer" в код роли "H"; неизвестное — DPS.
func roleCode(name string) string {
	name = strings.TrimSpace(name)
	if strings.EqualFold(name, "DPS") {
		return model.RoleCodes["DPS"]
	}
	if code, ok := model.RoleCodes[NormalizeName(name)]; ok {
		return code
	}
	return model.RoleCodes["DPS"]
}
