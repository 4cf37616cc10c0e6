package constants

const (
	ERROR_INPUT                = "Dados de entrada inválidos"
	ERROR_INTERNAL_ERROR       = "Erro interno do servidor"
	ERROR_PARSE_DATA_TO_LOCALS = "Falha ao recuperar dados do contexto"
	ERROR_CREATE               = "Erro ao criar registro"
	ERROR_UPDATE               = "Erro ao atualizar registro"
	ERROR_DELETE               = "Erro ao remover registro"
	DATA_INPUT_IS_NOT_NUMBER   = "O identificador informado não é um número"
	NOT_FOUND_RECORDS          = "Registro não encontrado"

	MISSING_LOGIN_INPUT   = "Usuário e senha são obrigatórios"
	INVALID_USERNAME      = "Usuário não cadastrado"
	INVALID_PASSWORD      = "Senha incorreta"
	ACCOUNT_NOT_ACTIVE    = "Usuário desativado"
	USERNAME_EXISTS       = "Nome de usuário já cadastrado"
	PASSWORDS_NOT_MATCH   = "As senhas não conferem"
	CAN_NOT_HASH_PASSWORD = "Não foi possível proteger a senha"
)
