package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mugiliam/contentsrv/internal/db/dbmanager"
	"github.com/mugiliam/contentsrv/internal/db/models"
	"github.com/mugiliam/contentsrv/internal/db/postgresql"
	"github.com/mugiliam/contentsrv/pkg/apperrors"
	"github.com/rs/zerolog/log"
)

// DB_ is an interface for the database connection. It wraps the underlying
// request-scoped connection with the operations of the content store.
type DB_ interface {
	// Users
	CreateUser(ctx context.Context, u *models.User) apperrors.Error
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, apperrors.Error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, apperrors.Error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, apperrors.Error)
	GetUserByURLIdentifier(ctx context.Context, urlIdentifier string) (*models.User, apperrors.Error)
	ListUsers(ctx context.Context) ([]*models.User, apperrors.Error)
	UpdateUser(ctx context.Context, u *models.User) apperrors.Error

	// Namespaces
	CreateNamespace(ctx context.Context, ns *models.Namespace, tags []string) apperrors.Error
	GetNamespace(ctx context.Context, id uuid.UUID) (*models.Namespace, apperrors.Error)
	GetNamespaceBySlug(ctx context.Context, slug string) (*models.Namespace, apperrors.Error)
	ListNamespaces(ctx context.Context, userID uuid.UUID) ([]*models.Namespace, apperrors.Error)
	UpdateNamespace(ctx context.Context, ns *models.Namespace) apperrors.Error
	ListNamespaceTags(ctx context.Context, namespaceID uuid.UUID) ([]*models.Tag, apperrors.Error)

	// Pages
	CreatePage(ctx context.Context, p *models.Page) apperrors.Error
	GetPage(ctx context.Context, id uuid.UUID) (*models.Page, apperrors.Error)
	GetPageByURLIdentifier(ctx context.Context, urlIdentifier string) (*models.Page, apperrors.Error)
	ListPagesByNamespace(ctx context.Context, namespaceID uuid.UUID) ([]*models.Page, apperrors.Error)
	UpdatePage(ctx context.Context, p *models.Page) apperrors.Error

	// Sections
	CreateSection(ctx context.Context, s *models.Section) apperrors.Error
	GetSection(ctx context.Context, id uuid.UUID) (*models.Section, apperrors.Error)
	ListSectionsByPage(ctx context.Context, pageID uuid.UUID) ([]*models.Section, apperrors.Error)
	UpdateSection(ctx context.Context, s *models.Section) apperrors.Error

	// Tags
	CreateTag(ctx context.Context, t *models.Tag) apperrors.Error
	GetTagByName(ctx context.Context, name string) (*models.Tag, apperrors.Error)
	ListTags(ctx context.Context) ([]*models.Tag, apperrors.Error)

	// Books
	CreateBook(ctx context.Context, b *models.Book) apperrors.Error
	GetBook(ctx context.Context, id uuid.UUID) (*models.Book, apperrors.Error)
	ListBooks(ctx context.Context) ([]*models.Book, apperrors.Error)

	// Close returns the connection to the pool.
	Close(ctx context.Context)
}

var pool dbmanager.ScopedDb

// Init creates the process-wide connection pool. Called once at startup,
// after the configuration has been loaded.
func Init(ctx context.Context) error {
	pg := dbmanager.NewScopedDb(ctx, "postgresql")
	if pg == nil {
		return errors.New("unable to create db pool")
	}
	pool = pg
	return nil
}

// Shutdown tears down the pool at process stop.
func Shutdown() {
	if pool != nil {
		pool.Close()
	}
}

func Conn(ctx context.Context) dbmanager.ScopedConn {
	if pool != nil {
		conn, err := pool.Conn(ctx)
		if err == nil {
			return conn
		}
		log.Ctx(ctx).Error().Err(err).Msg("unable to get db connection")
	}
	return nil
}

type ctxDbKeyType string

const ctxDbKey ctxDbKeyType = "ContentSrvDb"

func ConnCtx(ctx context.Context) context.Context {
	conn := Conn(ctx)
	return context.WithValue(ctx, ctxDbKey, conn)
}

func DB(ctx context.Context) DB_ {
	if conn, ok := ctx.Value(ctxDbKey).(dbmanager.ScopedConn); ok && conn != nil {
		return postgresql.NewContentDb(conn)
	}
	log.Ctx(ctx).Error().Msg("unable to get db connection from context")
	return nil
}
