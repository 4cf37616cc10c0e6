package helper

import (
	"time"

	"github.com/DimasTorres/FilmesApi/model"
)

// Cópia de campos DTO↔entidade feita à mão, um par por função,
// para manter o contrato de cópia auditável.

func ToFilme(input model.CreateFilmeInput) model.Filme {
	return model.Filme{
		Titulo:         input.Titulo,
		Diretor:        input.Diretor,
		Genero:         input.Genero,
		Duracao:        input.Duracao,
		DataLancamento: input.DataLancamento,
		Faturamento:    input.Faturamento,
	}
}

// ApplyUpdateFilme sobrescreve os campos do payload de atualização;
// o id nunca é tocado.
func ApplyUpdateFilme(filme *model.Filme, input model.UpdateFilmeInput) {
	filme.Titulo = input.Titulo
	filme.Diretor = input.Diretor
	filme.Genero = input.Genero
	filme.Duracao = input.Duracao
	filme.DataLancamento = input.DataLancamento
	filme.Faturamento = input.Faturamento
}

// ToUpdateFilmeInput projeta o estado atual no formato de atualização,
// base sobre a qual o documento de patch é aplicado.
func ToUpdateFilmeInput(filme model.Filme) model.UpdateFilmeInput {
	return model.UpdateFilmeInput{
		Titulo:         filme.Titulo,
		Diretor:        filme.Diretor,
		Genero:         filme.Genero,
		Duracao:        filme.Duracao,
		DataLancamento: filme.DataLancamento,
		Faturamento:    filme.Faturamento,
	}
}

// ToReadFilmeOutput preenche HoraDaConsulta no momento da serialização.
func ToReadFilmeOutput(filme model.Filme) model.ReadFilmeOutput {
	return model.ReadFilmeOutput{
		ID:             filme.ID,
		Titulo:         filme.Titulo,
		Diretor:        filme.Diretor,
		Genero:         filme.Genero,
		Duracao:        filme.Duracao,
		DataLancamento: filme.DataLancamento,
		Faturamento:    filme.Faturamento,
		Slug:           filme.Slug,
		HoraDaConsulta: time.Now(),
	}
}

func ToReadFilmeOutputs(filmes model.Filmes) []model.ReadFilmeOutput {
	outputs := make([]model.ReadFilmeOutput, 0, len(filmes))
	for _, filme := range filmes {
		outputs = append(outputs, ToReadFilmeOutput(filme))
	}
	return outputs
}

func ToCinema(input model.CreateCinemaInput) model.Cinema {
	return model.Cinema{
		Nome:       input.Nome,
		EnderecoId: input.EnderecoId,
	}
}

func ApplyUpdateCinema(cinema *model.Cinema, input model.UpdateCinemaInput) {
	cinema.Nome = input.Nome
	cinema.EnderecoId = input.EnderecoId
}

func ToReadCinemaOutput(cinema model.Cinema) model.ReadCinemaOutput {
	output := model.ReadCinemaOutput{
		ID:         cinema.ID,
		Nome:       cinema.Nome,
		Slug:       cinema.Slug,
		EnderecoId: cinema.EnderecoId,
	}
	if cinema.Endereco != nil {
		endereco := ToReadEnderecoOutput(*cinema.Endereco)
		output.Endereco = &endereco
	}
	return output
}

func ToReadCinemaOutputs(cinemas model.Cinemas) []model.ReadCinemaOutput {
	outputs := make([]model.ReadCinemaOutput, 0, len(cinemas))
	for _, cinema := range cinemas {
		outputs = append(outputs, ToReadCinemaOutput(cinema))
	}
	return outputs
}

func ToEndereco(input model.CreateEnderecoInput) model.Endereco {
	return model.Endereco{
		Logradouro: input.Logradouro,
		Numero:     input.Numero,
		Bairro:     input.Bairro,
	}
}

func ApplyUpdateEndereco(endereco *model.Endereco, input model.UpdateEnderecoInput) {
	endereco.Logradouro = input.Logradouro
	endereco.Numero = input.Numero
	endereco.Bairro = input.Bairro
}

func ToReadEnderecoOutput(endereco model.Endereco) model.ReadEnderecoOutput {
	return model.ReadEnderecoOutput{
		ID:         endereco.ID,
		Logradouro: endereco.Logradouro,
		Numero:     endereco.Numero,
		Bairro:     endereco.Bairro,
	}
}

func ToReadEnderecoOutputs(enderecos []model.Endereco) []model.ReadEnderecoOutput {
	outputs := make([]model.ReadEnderecoOutput, 0, len(enderecos))
	for _, endereco := range enderecos {
		outputs = append(outputs, ToReadEnderecoOutput(endereco))
	}
	return outputs
}

func ToSessao(input model.CreateSessaoInput) model.Sessao {
	return model.Sessao{
		FilmeId:  input.FilmeId,
		CinemaId: input.CinemaId,
	}
}

func ToReadSessaoOutput(sessao model.Sessao) model.ReadSessaoOutput {
	return model.ReadSessaoOutput{
		ID:       sessao.ID,
		FilmeId:  sessao.FilmeId,
		CinemaId: sessao.CinemaId,
	}
}

func ToReadUsuarioOutput(usuario model.Usuario) model.ReadUsuarioOutput {
	return model.ReadUsuarioOutput{
		ID:       usuario.ID,
		Username: usuario.Username,
		Ativo:    usuario.Ativo,
	}
}
