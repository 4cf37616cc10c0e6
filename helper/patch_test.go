package helper_test

import (
	"encoding/json"
	"testing"

	"github.com/DimasTorres/FilmesApi/helper"
	"github.com/DimasTorres/FilmesApi/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func raw(t *testing.T, v any) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func baseInput() model.UpdateFilmeInput {
	return model.UpdateFilmeInput{
		Titulo:  "A Origem",
		Diretor: "Christopher Nolan",
		Genero:  "Ficção científica",
		Duracao: 148,
	}
}

func TestApplyFilmePatchReplace(t *testing.T) {
	target := baseInput()
	doc := helper.PatchDocument{
		{Op: "replace", Path: "/titulo", Value: raw(t, "Interestelar")},
		{Op: "replace", Path: "/duracao", Value: raw(t, 169)},
	}

	require.NoError(t, helper.ApplyFilmePatch(doc, &target))
	assert.Equal(t, "Interestelar", target.Titulo)
	assert.Equal(t, 169, target.Duracao)
	assert.Equal(t, "Christopher Nolan", target.Diretor)
}

func TestApplyFilmePatchAdd(t *testing.T) {
	target := baseInput()
	doc := helper.PatchDocument{
		{Op: "add", Path: "/faturamento", Value: raw(t, "836848102.00")},
		{Op: "add", Path: "/dataLancamento", Value: raw(t, "2010-08-06")},
	}

	require.NoError(t, helper.ApplyFilmePatch(doc, &target))
	assert.True(t, target.Faturamento.Equal(decimal.RequireFromString("836848102.00")))
	assert.Equal(t, "2010-08-06", target.DataLancamento.String())
}

func TestApplyFilmePatchRemove(t *testing.T) {
	target := baseInput()
	doc := helper.PatchDocument{
		{Op: "remove", Path: "/diretor"},
		{Op: "remove", Path: "/duracao"},
	}

	require.NoError(t, helper.ApplyFilmePatch(doc, &target))
	assert.Empty(t, target.Diretor)
	assert.Zero(t, target.Duracao)
	assert.Equal(t, "A Origem", target.Titulo)
}

func TestApplyFilmePatchOrdem(t *testing.T) {
	// a última operação sobre o mesmo caminho vence
	target := baseInput()
	doc := helper.PatchDocument{
		{Op: "replace", Path: "/genero", Value: raw(t, "Drama")},
		{Op: "replace", Path: "/genero", Value: raw(t, "Suspense")},
	}

	require.NoError(t, helper.ApplyFilmePatch(doc, &target))
	assert.Equal(t, "Suspense", target.Genero)
}

func TestApplyFilmePatchOperacaoDesconhecida(t *testing.T) {
	target := baseInput()
	doc := helper.PatchDocument{
		{Op: "move", Path: "/titulo", Value: raw(t, "x")},
	}

	err := helper.ApplyFilmePatch(doc, &target)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "operação desconhecida")
}

func TestApplyFilmePatchCaminhoDesconhecido(t *testing.T) {
	target := baseInput()
	doc := helper.PatchDocument{
		{Op: "replace", Path: "/slug", Value: raw(t, "x")},
	}

	err := helper.ApplyFilmePatch(doc, &target)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "caminho desconhecido")
}

func TestApplyFilmePatchValorInvalido(t *testing.T) {
	target := baseInput()
	doc := helper.PatchDocument{
		{Op: "replace", Path: "/duracao", Value: raw(t, "não é número")},
	}

	require.Error(t, helper.ApplyFilmePatch(doc, &target))
}
