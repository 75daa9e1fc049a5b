// Command example mounts a landing page built in code next to the two pages
// it links to.
package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/3-lines-studio/showcase"
)

func main() {
	site := showcase.Site{
		Name: "Example",
		Pages: []showcase.SitePage{{
			Name:    "home",
			Pattern: "/",
			Meta:    showcase.Meta{Title: "Example", Description: "A landing page built in code."},
			Page: showcase.NewPage(
				showcase.Hero(showcase.HeroPayload{
					Headline:  "Find your style",
					Subtext:   "Answer a few questions, get outfit ideas.",
					ImageURL:  "/static/images/hero.svg",
					ImageAlt:  "Outfit on a table",
					Primary:   showcase.NavAction{Label: "Take the quiz", Destination: "quiz"},
					Secondary: showcase.NavAction{Label: "Browse", Destination: "recommendations"},
				}),
				showcase.FeatureGrid(showcase.FeatureGridPayload{
					Title: "How it works",
					Items: []showcase.FeatureItem{
						{Icon: "1", Title: "Answer", Body: "Pick what you like."},
						{Icon: "2", Title: "Match", Body: "We score your answers."},
					},
				}),
				showcase.CallToAction(showcase.CallToActionPayload{
					Headline: "Ready?",
					Action:   showcase.NavAction{Label: "Start", Destination: "quiz"},
				}),
			),
		}},
		Routes: map[showcase.RouteKey]string{
			"quiz":            "/quiz",
			"recommendations": "/recommendations",
		},
	}

	app, err := showcase.New(site, showcase.WithDev(true))
	if err != nil {
		log.Fatalf("Failed to load site: %v", err)
	}

	router := chi.NewRouter()
	router.Get("/quiz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("quiz goes here"))
	})
	router.Get("/recommendations", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("recommendations go here"))
	})

	addr := ":8080"
	log.Printf("Serving on http://localhost%s", addr)
	if err := http.ListenAndServe(addr, app.Wrap(router)); err != nil {
		log.Fatal(err)
	}
}
