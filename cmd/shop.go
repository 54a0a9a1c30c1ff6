package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var shopIcon string

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Spend earned points in the reward shop",
}

var shopListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the catalog and your balance",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := openApp()
		if err != nil {
			return err
		}
		defer st.Close()
		fmt.Print(newRenderer().RenderShop(a.Doc().ShopItems, a.Balance()))
		return nil
	},
}

var shopAddCmd = &cobra.Command{
	Use:   "add [name] [cost]",
	Short: "Add a catalog item",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := openApp()
		if err != nil {
			return err
		}
		defer st.Close()

		cost, err := strconv.Atoi(args[len(args)-1])
		if err != nil {
			return fmt.Errorf("cost must be a number, got %q", args[len(args)-1])
		}
		name := strings.Join(args[:len(args)-1], " ")
		item, err := a.AddShopItem(name, cost, shopIcon)
		if err != nil {
			return err
		}
		fmt.Printf("Item %q added for %d pts (%s)\n", item.Name, item.Cost, item.ID[:8])
		return nil
	},
}

var shopRmCmd = &cobra.Command{
	Use:   "rm [id]",
	Short: "Remove a catalog item (redemptions keep their snapshot)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := openApp()
		if err != nil {
			return err
		}
		defer st.Close()
		return a.DeleteShopItem(resolveShopItem(a, args[0]))
	},
}

var shopBuyCmd = &cobra.Command{
	Use:   "buy [id]",
	Short: "Redeem points against an item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := openApp()
		if err != nil {
			return err
		}
		defer st.Close()

		r, err := a.Buy(resolveShopItem(a, args[0]))
		if err != nil {
			return err
		}
		fmt.Printf("Redeemed %q for %d pts. Balance: %d\n", r.ItemName, r.Cost, a.Balance())
		return nil
	},
}

var shopHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List past redemptions",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := openApp()
		if err != nil {
			return err
		}
		defer st.Close()
		for _, r := range a.Doc().Redemptions {
			fmt.Printf("%s  %-24s %4d pts\n", r.Date, r.ItemName, r.Cost)
		}
		return nil
	},
}

var shopBalanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show the current points balance",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := openApp()
		if err != nil {
			return err
		}
		defer st.Close()
		fmt.Println(a.Balance())
		return nil
	},
}

func init() {
	shopAddCmd.Flags().StringVarP(&shopIcon, "icon", "i", "", "Display icon")
	shopCmd.AddCommand(shopListCmd, shopAddCmd, shopRmCmd, shopBuyCmd, shopHistoryCmd, shopBalanceCmd)
}
