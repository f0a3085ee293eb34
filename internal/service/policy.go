package service

import (
	"ContinuumLoot/internal/model"
	"errors"
	"fmt"
)

// ErrForbidden — у вызывающего нет прав на операцию.
var ErrForbidden = errors.New("insufficient permission")

// ErrInvalid — запрос синтаксически корректен, но бессмыслен
// (неизвестный id, кривая дата и т.п.).
var ErrInvalid = errors.New("invalid request")

// Action — операция, на которую запрашивается доступ.
type Action int

const (
	// ActionEditOwnPlayer — notes/role/wishlist собственного персонажа.
	ActionEditOwnPlayer Action = iota
	// ActionEditPlayerCore — name/class/rank/attendance любого персонажа.
	ActionEditPlayerCore
	// ActionEditItem — tier/notes/category предмета.
	ActionEditItem
	ActionEditClassPrio
	ActionEditIndividualPrio
	ActionEditLootHistory
	ActionBulkUpload
	ActionViewUsers
	ActionEditUsers
)

// Allowed — единственная точка принятия решений о доступе. Вся таблица прав
// живёт здесь, хендлеры и сервисы не держат собственных проверок уровней.
// targetPlayerID имеет смысл только для действий над персонажем.
func Allowed(caller *model.User, action Action, targetPlayerID int64) error {
	if caller == nil {
		return fmt.Errorf("%w: not logged in", ErrForbidden)
	}

	level := caller.PermissionLevel

	switch action {
	case ActionEditOwnPlayer:
		if level >= model.PermissionAdmin {
			return nil
		}
		if caller.PlayerID != nil && *caller.PlayerID == targetPlayerID {
			return nil
		}
		return fmt.Errorf("%w: can only edit own character", ErrForbidden)

	case ActionEditPlayerCore, ActionBulkUpload, ActionEditUsers:
		if level >= model.PermissionAdmin {
			return nil
		}

	case ActionEditItem, ActionEditClassPrio, ActionEditIndividualPrio,
		ActionEditLootHistory, ActionViewUsers:
		if level >= model.PermissionOfficer {
			return nil
		}
	}

	return fmt.Errorf("%w: permission level %d", ErrForbidden, level)
}
