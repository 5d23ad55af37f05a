package main

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/inkread/inkread/internal/auth"
	"github.com/inkread/inkread/internal/books"
	"github.com/inkread/inkread/internal/config"
	"github.com/inkread/inkread/internal/logging"
	"github.com/inkread/inkread/internal/model"
	"github.com/inkread/inkread/internal/rankings"
	"github.com/inkread/inkread/internal/readinglists"
	"github.com/inkread/inkread/internal/rest"
	"github.com/inkread/inkread/internal/session"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.inkread.app"
	AppName = "Inkread"

	WindowWidth  = 420
	WindowHeight = 760
)

func main() {
	cfg, err := config.Load("config.yml")
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		return
	}

	log := logging.New(cfg.IsDebug)
	log.WithFields(logrus.Fields{
		"version":  version,
		"base_url": cfg.API.BaseURL,
	}).Info("Inkread starting")

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	sessions := session.NewStore(myApp.Preferences())

	client := rest.NewClient(rest.ClientConfig{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout(),
		Tokens:  sessions,
		Logger:  log,
	})

	bookSvc := books.NewService(client, log)
	rankingSvc := rankings.NewService(client, log)
	readingListSvc := readinglists.NewService(client, log)

	authSvc := auth.NewService(client, log)
	controller := auth.NewController(sessions, authSvc, log)

	statusLabel := widget.NewLabel("Checking session...")
	controller.Subscribe(func(state model.AuthState, user *model.User) {
		text := fmt.Sprintf("Session: %s", state)
		if user != nil {
			text = fmt.Sprintf("Session: %s (%s)", state, user.Username)
		}
		fyne.Do(func() { statusLabel.SetText(text) })
	})

	controller.Restore()

	// Warm the home screen caches once the session is settled. Fallback
	// services never error, so a cold backend just yields empty views.
	go func() {
		ctx := context.Background()
		front := bookSvc.FrontPage(ctx)
		overview := rankingSvc.Overview(ctx)
		log.WithFields(logrus.Fields{
			"front_page_books": len(front),
			"hot_ranked":       len(overview.Hot),
		}).Debug("home screen prefetch done")

		if controller.IsAuthenticated() {
			lists := readingListSvc.List(ctx, readinglists.ListOptions{
				PageSize: settings.GetLibraryPageSize(),
			})
			log.WithField("reading_lists", len(lists.Data)).Debug("library prefetch done")
		}
	}()

	myWindow.SetContent(container.NewVBox(
		widget.NewLabelWithStyle(AppName, fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		statusLabel,
	))

	// Show and run
	myWindow.ShowAndRun()
}
