package helper

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/DimasTorres/FilmesApi/model"
	"github.com/DimasTorres/FilmesApi/utils"
	"github.com/shopspring/decimal"
)

// PatchOperation é uma edição de campo dentro de um documento de patch:
// caminho + operação + valor. "replace" e "add" gravam o valor,
// "remove" limpa o campo.
type PatchOperation struct {
	Op    string          `json:"op"`
	Path  string          `json:"path"`
	Value json.RawMessage `json:"value"`
}

type PatchDocument []PatchOperation

// ApplyFilmePatch aplica o documento, na ordem, sobre uma cópia tipada
// do estado de atualização. A validação fica a cargo de quem chama,
// com as mesmas regras do PUT.
func ApplyFilmePatch(doc PatchDocument, target *model.UpdateFilmeInput) error {
	for _, op := range doc {
		kind := strings.ToLower(op.Op)
		switch kind {
		case "replace", "add", "remove":
		default:
			return fmt.Errorf("operação desconhecida: %q", op.Op)
		}

		path := strings.ToLower(strings.TrimPrefix(op.Path, "/"))
		remove := kind == "remove"

		switch path {
		case "titulo":
			if remove {
				target.Titulo = ""
			} else if err := json.Unmarshal(op.Value, &target.Titulo); err != nil {
				return fmt.Errorf("valor inválido para %q: %v", op.Path, err)
			}
		case "diretor":
			if remove {
				target.Diretor = ""
			} else if err := json.Unmarshal(op.Value, &target.Diretor); err != nil {
				return fmt.Errorf("valor inválido para %q: %v", op.Path, err)
			}
		case "genero":
			if remove {
				target.Genero = ""
			} else if err := json.Unmarshal(op.Value, &target.Genero); err != nil {
				return fmt.Errorf("valor inválido para %q: %v", op.Path, err)
			}
		case "duracao":
			if remove {
				target.Duracao = 0
			} else if err := json.Unmarshal(op.Value, &target.Duracao); err != nil {
				return fmt.Errorf("valor inválido para %q: %v", op.Path, err)
			}
		case "datalancamento":
			if remove {
				target.DataLancamento = utils.CustomDate{}
			} else if err := json.Unmarshal(op.Value, &target.DataLancamento); err != nil {
				return fmt.Errorf("valor inválido para %q: %v", op.Path, err)
			}
		case "faturamento":
			if remove {
				target.Faturamento = decimal.Decimal{}
			} else if err := json.Unmarshal(op.Value, &target.Faturamento); err != nil {
				return fmt.Errorf("valor inválido para %q: %v", op.Path, err)
			}
		default:
			return fmt.Errorf("caminho desconhecido: %q", op.Path)
		}
	}
	return nil
}
