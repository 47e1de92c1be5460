// Command seed populates a development database with demo accounts and
// articles. It goes through the usecase layer so seeded data obeys the same
// validation and slug rules as data created through the API.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"golang.org/x/sync/errgroup"

	"conduit/internal/config"
	"conduit/internal/domain/entity"
	pgRepo "conduit/internal/infra/adapter/persistence/postgres"
	"conduit/internal/infra/db"
	"conduit/internal/observability/logging"
	"conduit/internal/repository"
	authservice "conduit/internal/service/auth"
	artUC "conduit/internal/usecase/article"
	userUC "conduit/internal/usecase/user"
)

type seedUser struct {
	Username string
	Email    string
	Password string
	Bio      string
	Articles []seedArticle
}

type seedArticle struct {
	Title       string
	Description string
	Body        string
	Tags        []string
}

var seedData = []seedUser{
	{
		Username: "jake",
		Email:    "jake@example.com",
		Password: "guerrilla-radio",
		Bio:      "I work at statefarm",
		Articles: []seedArticle{
			{
				Title:       "How to train your dragon",
				Description: "Ever wonder how?",
				Body:        "It takes a Jacobian",
				Tags:        []string{"dragons", "training"},
			},
			{
				Title:       "How to train your dragon 2",
				Description: "So toothless",
				Body:        "It is a dragon",
				Tags:        []string{"dragons"},
			},
		},
	},
	{
		Username: "celeb-anah",
		Email:    "anah@example.com",
		Password: "since-1988!",
		Bio:      "Mostly reposting",
		Articles: []seedArticle{
			{
				Title:       "Did you train your dragon?",
				Description: "Asking the real questions",
				Body:        "Reposting the classics",
				Tags:        []string{"dragons", "reposts"},
			},
		},
	},
	{
		Username: "quiet-reader",
		Email:    "reader@example.com",
		Password: "never-posts-1",
		Bio:      "",
		Articles: nil,
	},
}

func main() {
	// CLI なのでテキスト出力にする
	logger := logging.NewTextLogger()
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("seed failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("seed completed")
}

func run(logger *slog.Logger) error {
	securityCfg, err := config.LoadSecurityConfigOrDefault(os.Getenv("SECURITY_CONFIG"))
	if err != nil {
		return fmt.Errorf("load security configuration: %w", err)
	}

	database := db.Open()
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()
	db.Migrate(database)

	userRepo := pgRepo.NewUserRepo(database)
	articleRepo := pgRepo.NewArticleRepo(database)

	passwords := authservice.NewPasswordService(authservice.PasswordPolicy{
		MinLength:     securityCfg.GetMinPasswordLength(),
		WeakPasswords: securityCfg.GetWeakPasswords(),
	})

	userSvc := &userUC.Service{Repo: userRepo, Passwords: passwords}
	articleSvc := &artUC.Service{Repo: articleRepo, Users: userRepo}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	// アカウント作成は bcrypt が支配的なので並行実行する
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	accounts := make([]*entity.User, len(seedData))
	for i, su := range seedData {
		g.Go(func() error {
			account, err := seedAccount(gctx, userSvc, userRepo, su)
			if err != nil {
				return fmt.Errorf("seed user %q: %w", su.Username, err)
			}
			accounts[i] = account
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// 記事はスラグ衝突の連番が決定的になるよう直列で作成する
	for i, su := range seedData {
		for _, sa := range su.Articles {
			if err := seedOneArticle(ctx, logger, articleSvc, accounts[i].ID, sa); err != nil {
				return fmt.Errorf("seed article %q: %w", sa.Title, err)
			}
		}
	}

	return nil
}

// seedAccount registers the account, or looks it up when a previous run
// already created it.
func seedAccount(ctx context.Context, svc *userUC.Service, repo repository.UserRepository, su seedUser) (*entity.User, error) {
	account, err := svc.Register(ctx, userUC.RegisterInput{
		Username: su.Username,
		Email:    su.Email,
		Password: su.Password,
	})
	if err == nil {
		if su.Bio != "" {
			bio := su.Bio
			return svc.Update(ctx, userUC.UpdateInput{ID: account.ID, Bio: &bio})
		}
		return account, nil
	}

	var verr *entity.ValidationError
	if errors.As(err, &verr) {
		// 既存アカウントとの重複はやり直しとみなす
		existing, lookupErr := repo.GetByEmail(ctx, su.Email)
		if lookupErr == nil && existing != nil {
			return existing, nil
		}
	}
	return nil, err
}

func seedOneArticle(ctx context.Context, logger *slog.Logger, svc *artUC.Service, authorID int64, sa seedArticle) error {
	article, err := svc.Create(ctx, authorID, artUC.CreateInput{
		Title:       sa.Title,
		Description: sa.Description,
		Body:        sa.Body,
		Tags:        sa.Tags,
	})
	if err != nil {
		return err
	}
	logger.Info("article seeded",
		slog.String("slug", article.Article.Slug),
		slog.Int64("author_id", authorID))
	return nil
}
