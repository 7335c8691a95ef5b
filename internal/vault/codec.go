package vault

import (
	"encoding/base64"
	"encoding/json"

	"github.com/pkg/errors"
)

// recordJSON is the persisted document, one per identifier. Binary fields
// are standard base64.
type recordJSON struct {
	Salt       string `json:"salt"`
	Nonce      string `json:"nonce"`
	Ciphertext string `json:"ciphertext"`
}

// serializeRecord encodes a record into its persisted JSON form
func serializeRecord(record *EncryptedKeyRecord) ([]byte, error) {
	doc := recordJSON{
		Salt:       base64.StdEncoding.EncodeToString(record.Salt),
		Nonce:      base64.StdEncoding.EncodeToString(record.Nonce),
		Ciphertext: base64.StdEncoding.EncodeToString(record.Ciphertext),
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.Wrap(ErrFormat, err.Error())
	}

	return data, nil
}

// deserializeRecord parses a persisted record, validating the structure and
// the decoded length of every field
func deserializeRecord(data []byte) (*EncryptedKeyRecord, error) {
	var doc recordJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(ErrFormat, err.Error())
	}

	salt, err := base64.StdEncoding.DecodeString(doc.Salt)
	if err != nil {
		return nil, errors.Wrap(ErrFormat, "invalid salt encoding")
	}
	if len(salt) != SaltSize {
		return nil, errors.Wrapf(ErrFormat, "salt is %d bytes, expected %d", len(salt), SaltSize)
	}

	nonce, err := base64.StdEncoding.DecodeString(doc.Nonce)
	if err != nil {
		return nil, errors.Wrap(ErrFormat, "invalid nonce encoding")
	}
	if len(nonce) != NonceSize {
		return nil, errors.Wrapf(ErrFormat, "nonce is %d bytes, expected %d", len(nonce), NonceSize)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(doc.Ciphertext)
	if err != nil {
		return nil, errors.Wrap(ErrFormat, "invalid ciphertext encoding")
	}
	if len(ciphertext) < TagSize {
		return nil, errors.Wrapf(ErrFormat, "ciphertext is %d bytes, shorter than the auth tag", len(ciphertext))
	}

	return &EncryptedKeyRecord{
		Salt:       salt,
		Nonce:      nonce,
		Ciphertext: ciphertext,
	}, nil
}
