package service

import (
	"ContinuumLoot/internal/model"
	"ContinuumLoot/internal/repo"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ItemService — предметы и их приоритетные списки.
type ItemService struct {
	items repo.ItemRepository
}

func NewItemService(items repo.ItemRepository) *ItemService {
	return &ItemService{items: items}
}

func (s *ItemService) List(ctx context.Context) ([]ItemDTO, error) {
	items, err := s.items.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ItemDTO, 0, len(items))
	for i := range items {
		out = append(out, ItemToDTO(&items[i]))
	}
	return out, nil
}

// Update применяет полное целевое состояние предмета.
//
// Меняются только tier/notes/category; name, type, raid и боссы этим путём
// неизменяемы, что бы ни пришло в запросе. Каждый из двух списков приоритетов
// выверяется независимо и под собственным правом; новые строки записывают
// вызывающего в set_by.
func (s *ItemService) Update(ctx context.Context, caller *model.User, dto ItemDTO) error {
	if err := Allowed(caller, ActionEditItem, 0); err != nil {
		return err
	}

	current, err := s.items.GetItemByID(ctx, dto.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: unknown item %d", ErrInvalid, dto.ID)
	}
	if err != nil {
		return err
	}

	fields := map[string]any{
		"tier":     dto.Tier,
		"notes":    dto.Notes,
		"category": dto.Category,
	}
	if err := s.items.UpdateItemFields(ctx, dto.ID, fields); err != nil {
		return err
	}

	if Allowed(caller, ActionEditClassPrio, 0) == nil {
		toAdd, toDelete := diffClassPrios(caller.ID, current, dto.ClassPrio)
		if err := s.items.AddClassPrios(ctx, toAdd); err != nil {
			return err
		}
		if err := s.items.DeleteClassPrios(ctx, toDelete); err != nil {
			return err
		}
	}

	if Allowed(caller, ActionEditIndividualPrio, 0) == nil {
		toAdd, toDelete := diffIndividualPrios(caller.ID, current, dto.IndividualPrio)
		if err := s.items.AddIndividualPrios(ctx, toAdd); err != nil {
			return err
		}
		if err := s.items.DeleteIndividualPrios(ctx, toDelete); err != nil {
			return err
		}
	}

	return nil
}

type classPrioKey struct {
	class string
	prio  int
}

// diffClassPrios — та же выверка, что и у вишлиста: совпавшие пары
// (class, prio) не трогаются, недостающие создаются, лишние удаляются.
func diffClassPrios(setBy int64, current *model.Item, want []ClassPrioDTO) (toAdd []model.ClassPrio, toDelete []int64) {
	wanted := make(map[classPrioKey]bool, len(want))
	for _, w := range want {
		wanted[classPrioKey{class: w.Class, prio: w.Prio}] = true
	}

	existing := make(map[classPrioKey]bool, len(current.ClassPrios))
	for _, e := range current.ClassPrios {
		key := classPrioKey{class: e.ClassName, prio: e.Prio}
		existing[key] = true
		if !wanted[key] {
			toDelete = append(toDelete, e.ID)
		}
	}

	for _, w := range want {
		key := classPrioKey{class: w.Class, prio: w.Prio}
		if !existing[key] {
			// дубль пары в одном запросе — та же запись
			existing[key] = true
			toAdd = append(toAdd, model.ClassPrio{
				ItemID:    current.ID,
				ClassName: w.Class,
				Prio:      w.Prio,
				SetByID:   &setBy,
			})
		}
	}
	return toAdd, toDelete
}

type individualPrioKey struct {
	playerID int64
	prio     int
}

func diffIndividualPrios(setBy int64, current *model.Item, want []IndividualPrioDTO) (toAdd []model.IndividualPrio, toDelete []int64) {
	wanted := make(map[individualPrioKey]bool, len(want))
	for _, w := range want {
		wanted[individualPrioKey{playerID: w.PlayerID, prio: w.Prio}] = true
	}

	existing := make(map[individualPrioKey]bool, len(current.IndividualPrios))
	for _, e := range current.IndividualPrios {
		key := individualPrioKey{playerID: e.PlayerID, prio: e.Prio}
		existing[key] = true
		if !wanted[key] {
			toDelete = append(toDelete, e.ID)
		}
	}

	for _, w := range want {
		key := individualPrioKey{playerID: w.PlayerID, prio: w.Prio}
		if !existing[key] {
			// дубль пары в одном запросе — та же запись
			existing[key] = true
			toAdd = append(toAdd, model.IndividualPrio{
				ItemID:   current.ID,
				PlayerID: w.PlayerID,
				Prio:     w.Prio,
				SetByID:  &setBy,
			})
		}
	}
	return toAdd, toDelete
}
