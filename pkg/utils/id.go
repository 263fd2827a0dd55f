package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera um id curto usado como âncora dos gráficos na página
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 8)
}
