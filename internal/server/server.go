package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/mugiliam/contentsrv/internal/apis"
	"github.com/mugiliam/contentsrv/internal/config"
	"github.com/mugiliam/contentsrv/internal/httpx"
	"github.com/mugiliam/contentsrv/internal/server/middleware"
	"github.com/rs/zerolog/log"
)

type ContentServer struct {
	Router *chi.Mux
}

func CreateNewServer() (*ContentServer, error) {
	s := &ContentServer{}
	s.Router = chi.NewRouter()
	return s, nil
}

func (s *ContentServer) MountHandlers() {
	s.Router.Use(chimiddleware.RequestID)
	s.Router.Use(middleware.RequestLogger)
	if config.Config().Server.HandleCORS {
		s.Router.Use(s.HandleCORS)
	}
	s.Router.Get("/", s.getIndex)
	s.Router.With(middleware.LoadScopedDB).Get("/u/{username}", httpx.WrapHttpRsp(apis.GetUserProfile))
	s.Router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.LoadScopedDB)
		apis.Router(r)
	})
}

func (s *ContentServer) getIndex(w http.ResponseWriter, r *http.Request) {
	log.Ctx(r.Context()).Debug().Msg("GetIndex")
	httpx.SendJsonRsp(w, http.StatusOK, map[string]string{"message": "content service is running"})
}

func (s *ContentServer) HandleCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Set CORS headers
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization")

		if r.Method == "OPTIONS" {
			log.Ctx(r.Context()).Debug().Msg("OPTIONS request")
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
