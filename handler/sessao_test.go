package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/DimasTorres/FilmesApi/model"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedCinemaComEndereco(t *testing.T, db *gorm.DB) model.Cinema {
	t.Helper()
	endereco := seedEndereco(t, db)
	cinema := model.Cinema{Nome: "UCI Orient", Slug: "uci-orient", EnderecoId: endereco.ID}
	require.NoError(t, db.Create(&cinema).Error)
	return cinema
}

func TestCreateSessao(t *testing.T) {
	app, db := setupApp(t)
	filme := seedFilmes(t, db, 1)[0]
	cinema := seedCinemaComEndereco(t, db)

	payload := fiber.Map{"filmeId": filme.ID, "cinemaId": cinema.ID}
	resp := doRequest(t, app, http.MethodPost, "/Sessao", payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created model.ReadSessaoOutput
	decodeBody(t, resp, &created)
	require.Greater(t, created.ID, uint(0))
	assert.Equal(t, fmt.Sprintf("/Sessao/%d", created.ID), resp.Header.Get("Location"))
	assert.Equal(t, filme.ID, created.FilmeId)
	assert.Equal(t, cinema.ID, created.CinemaId)

	resp = doRequest(t, app, http.MethodGet, fmt.Sprintf("/Sessao/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCreateSessaoFilmeInexistente(t *testing.T) {
	app, db := setupApp(t)
	cinema := seedCinemaComEndereco(t, db)

	payload := fiber.Map{"filmeId": 999, "cinemaId": cinema.ID}
	resp := doRequest(t, app, http.MethodPost, "/Sessao", payload)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		KeyError string `json:"keyError"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "filmeId", body.KeyError)
}

func TestCreateSessaoCinemaInexistente(t *testing.T) {
	app, db := setupApp(t)
	filme := seedFilmes(t, db, 1)[0]

	payload := fiber.Map{"filmeId": filme.ID, "cinemaId": 999}
	resp := doRequest(t, app, http.MethodPost, "/Sessao", payload)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		KeyError string `json:"keyError"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "cinemaId", body.KeyError)
}

func TestDeleteSessao(t *testing.T) {
	app, db := setupApp(t)
	filme := seedFilmes(t, db, 1)[0]
	cinema := seedCinemaComEndereco(t, db)

	sessao := model.Sessao{FilmeId: filme.ID, CinemaId: cinema.ID}
	require.NoError(t, db.Create(&sessao).Error)

	resp := doRequest(t, app, http.MethodDelete, fmt.Sprintf("/Sessao/%d", sessao.ID), nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doRequest(t, app, http.MethodGet, fmt.Sprintf("/Sessao/%d", sessao.ID), nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
