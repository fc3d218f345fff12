package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/vladjedd-tech/HarpiasTesouraria/models"
	"github.com/vladjedd-tech/HarpiasTesouraria/pkg/config"
	"github.com/vladjedd-tech/HarpiasTesouraria/pkg/store"
)

func main() {
	role := flag.String("role", string(models.RoleMember), "member or treasurer")
	position := flag.String("position", "", "position in the club")
	mustChange := flag.Bool("must-change", true, "require a password change at first login")
	flag.Parse()
	if flag.NArg() < 3 {
		fmt.Println("usage: go run ./cmd/create_member [-role treasurer] [-position X] <nickname> <display name> <password>")
		os.Exit(2)
	}
	nickname, name, password := flag.Arg(0), flag.Arg(1), flag.Arg(2)
	if len(password) < 6 {
		fmt.Fprintln(os.Stderr, "password too short (min 6)")
		os.Exit(2)
	}
	if !models.Role(*role).Valid() {
		fmt.Fprintf(os.Stderr, "invalid role %q\n", *role)
		os.Exit(2)
	}

	cfg, err := config.Load("")
	if err != nil || cfg.DBDSN == "" {
		slog.Error("DB_DSN not set in environment", "err", err)
		os.Exit(1)
	}
	db, err := store.OpenPostgres(cfg.DBDSN)
	if err != nil {
		slog.Error("failed to open db", "err", err)
		os.Exit(1)
	}
	gw := store.New(db)
	ctx := context.Background()

	if existing, err := gw.MemberByNickname(ctx, nickname); err == nil {
		fmt.Printf("member %s already exists (id=%s)\n", existing.Nickname, existing.ID)
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("bcrypt failed", "err", err)
		os.Exit(1)
	}
	m, err := gw.UpsertMember(ctx, store.Actor{Nickname: store.SystemActor}, models.Member{
		DisplayName:            name,
		Nickname:               nickname,
		Position:               *position,
		Role:                   models.Role(*role),
		Status:                 models.MemberActive,
		PasswordHash:           hash,
		RequiresPasswordChange: *mustChange,
	})
	if err != nil {
		slog.Error("failed to create member", "err", err)
		os.Exit(1)
	}
	fmt.Printf("created member %s id=%s role=%s\n", m.Nickname, m.ID, m.Role)
}
