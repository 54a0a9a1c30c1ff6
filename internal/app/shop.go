package app

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ramanasai/dayflow/internal/model"
)

func (a *App) AddShopItem(name string, cost int, icon string) (model.ShopItem, error) {
	if cost < 0 {
		return model.ShopItem{}, fmt.Errorf("cost must be non-negative")
	}
	item := model.ShopItem{ID: uuid.NewString(), Name: name, Cost: cost, Icon: icon}
	a.doc.ShopItems = append(a.doc.ShopItems, item)
	return item, a.save()
}

func (a *App) DeleteShopItem(id string) error {
	kept := a.doc.ShopItems[:0]
	found := false
	for _, item := range a.doc.ShopItems {
		if item.ID == id {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		return fmt.Errorf("shop item %q not found", id)
	}
	a.doc.ShopItems = kept
	return a.save()
}

// Buy redeems points against a catalog item. The redemption snapshots the
// item's name and cost so later catalog edits don't rewrite history.
func (a *App) Buy(shopItemID string) (model.Redemption, error) {
	var item *model.ShopItem
	for i := range a.doc.ShopItems {
		if a.doc.ShopItems[i].ID == shopItemID {
			item = &a.doc.ShopItems[i]
			break
		}
	}
	if item == nil {
		return model.Redemption{}, fmt.Errorf("shop item %q not found", shopItemID)
	}
	if balance := a.Balance(); balance < item.Cost {
		return model.Redemption{}, fmt.Errorf("not enough points: have %d, need %d", balance, item.Cost)
	}
	now := a.now()
	r := model.Redemption{
		ID:         uuid.NewString(),
		ShopItemID: item.ID,
		ItemName:   item.Name,
		Cost:       item.Cost,
		Date:       now.Format(model.DateFormat),
		Timestamp:  now.Unix(),
	}
	a.doc.Redemptions = append(a.doc.Redemptions, r)
	return r, a.save()
}
