package tests

import (
	"context"
	"testing"

	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/config"
	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/dto"
	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/model"
	"github.com/Tonelli2003/rytekshop-estoque-app-v2/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthFixture() (*stubUsuarioRepo, service.AuthService) {
	repo := newStubUsuarioRepo()
	cfg := &config.Config{
		JWTSecret:          "segredo-de-teste",
		JWTExpirationHours: 1,
		JWTRefreshHours:    24,
	}
	return repo, service.NewAuthService(repo, cfg)
}

func seedUsuario(repo *stubUsuarioRepo, login, senha, cargo string) *model.Usuario {
	hash, _ := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.MinCost)
	u := &model.Usuario{
		ID:        uuid.New(),
		Login:     login,
		SenhaHash: string(hash),
		Cargo:     cargo,
	}
	repo.usuarios[u.ID] = u
	return u
}

func TestLoginComCredenciaisValidas(t *testing.T) {
	repo, svc := newAuthFixture()
	seedUsuario(repo, "gerente", "1234", model.CargoGerente)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Login: "gerente",
		Senha: "1234",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, model.CargoGerente, resp.User.Cargo)
}

func TestLoginComSenhaErrada(t *testing.T) {
	repo, svc := newAuthFixture()
	seedUsuario(repo, "gerente", "1234", model.CargoGerente)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Login: "gerente",
		Senha: "errada",
	})
	assert.ErrorContains(t, err, "credenciais inválidas")
}

func TestLoginComUsuarioInexistente(t *testing.T) {
	_, svc := newAuthFixture()

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Login: "ninguem",
		Senha: "1234",
	})
	assert.ErrorContains(t, err, "credenciais inválidas")
}

// Auto-registro sempre cria contas VENDEDOR; contas GERENTE são
// provisionadas fora de banda.
func TestRegistrarCriaSempreVendedor(t *testing.T) {
	repo, svc := newAuthFixture()

	resp, err := svc.Registrar(context.Background(), dto.RegisterRequest{
		Login: "novo.vendedor",
		Senha: "senha123",
	})
	require.NoError(t, err)
	assert.Equal(t, model.CargoVendedor, resp.Cargo)

	u, err := repo.FindByLogin(context.Background(), "novo.vendedor")
	require.NoError(t, err)
	assert.Equal(t, model.CargoVendedor, u.Cargo)
	// A senha nunca é armazenada em claro.
	assert.NotEqual(t, "senha123", u.SenhaHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.SenhaHash), []byte("senha123")))
}

func TestRegistrarLoginDuplicado(t *testing.T) {
	repo, svc := newAuthFixture()
	seedUsuario(repo, "vendedor", "1234", model.CargoVendedor)

	_, err := svc.Registrar(context.Background(), dto.RegisterRequest{
		Login: "vendedor",
		Senha: "outra",
	})
	assert.Error(t, err)
}

func TestRefreshEmiteNovosTokens(t *testing.T) {
	repo, svc := newAuthFixture()
	seedUsuario(repo, "gerente", "1234", model.CargoGerente)

	login, err := svc.Login(context.Background(), dto.LoginRequest{
		Login: "gerente",
		Senha: "1234",
	})
	require.NoError(t, err)

	renovado, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, renovado.AccessToken)
	assert.Equal(t, login.User.ID, renovado.User.ID)
}

func TestRefreshComTokenInvalido(t *testing.T) {
	_, svc := newAuthFixture()

	_, err := svc.Refresh(context.Background(), "token-qualquer")
	assert.Error(t, err)
}
