package app

import "github.com/algharieb/ghareeb-app/internal/domain"

// App is the public operation surface the UI layer talks to.
type App struct {
	Directory domain.DirectoryService
	Messaging domain.MessagingService
	Session   domain.SessionManager
}

// New bundles the services into an App.
func New(directory domain.DirectoryService, messaging domain.MessagingService, session domain.SessionManager) *App {
	return &App{
		Directory: directory,
		Messaging: messaging,
		Session:   session,
	}
}
