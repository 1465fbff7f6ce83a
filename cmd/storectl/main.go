// storectl is a small operator tool for seeding the catalog and moving
// orders without opening the dashboard. It talks to the same backend
// API as the web frontend.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gamestorebd/storefront/internal/backend"
)

func main() {
	addGameCmd := flag.NewFlagSet("add-game", flag.ExitOnError)
	gameToken := addGameCmd.String("token", "", "Admin bearer token")
	title := addGameCmd.String("title", "", "Game title")
	platform := addGameCmd.String("platform", "PC", "Platform (PC or Mobile)")
	price := addGameCmd.Float64("price", 0, "Price")
	category := addGameCmd.String("category", "", "Category")
	description := addGameCmd.String("description", "", "Description")
	images := addGameCmd.String("images", "", "Comma-separated image URLs")

	setStatusCmd := flag.NewFlagSet("set-status", flag.ExitOnError)
	statusToken := setStatusCmd.String("token", "", "Admin bearer token")
	orderID := setStatusCmd.String("order", "", "Order ID")
	status := setStatusCmd.String("status", "", "New status (pending, verified, delivered, cancelled)")

	if len(os.Args) < 2 {
		fmt.Println("expected 'add-game' or 'set-status' subcommand")
		os.Exit(1)
	}

	backendURL := os.Getenv("BACKEND_URL")
	if backendURL == "" {
		backendURL = "http://localhost:8000"
	}
	api := backend.NewClient(backendURL)

	switch os.Args[1] {
	case "add-game":
		addGameCmd.Parse(os.Args[2:])
		if *gameToken == "" || *title == "" {
			fmt.Println("token and title are required")
			addGameCmd.PrintDefaults()
			os.Exit(1)
		}
		var imageList []string
		for _, img := range strings.Split(*images, ",") {
			if img = strings.TrimSpace(img); img != "" {
				imageList = append(imageList, img)
			}
		}
		game, err := api.CreateGame(context.Background(), *gameToken, backend.GameInput{
			Title:       *title,
			Platform:    *platform,
			Price:       *price,
			Category:    *category,
			Description: *description,
			Images:      imageList,
		})
		if err != nil {
			log.Fatalf("Failed to create game: %v", err)
		}
		fmt.Printf("Game '%s' created with id %s.\n", game.Title, game.ID)
	case "set-status":
		setStatusCmd.Parse(os.Args[2:])
		if *statusToken == "" || *orderID == "" || *status == "" {
			fmt.Println("token, order and status are required")
			setStatusCmd.PrintDefaults()
			os.Exit(1)
		}
		if err := api.UpdateOrderStatus(context.Background(), *statusToken, *orderID, *status); err != nil {
			log.Fatalf("Failed to update order: %v", err)
		}
		fmt.Printf("Order %s set to %s.\n", *orderID, *status)
	default:
		fmt.Println("expected 'add-game' or 'set-status' subcommand")
		os.Exit(1)
	}
}
