// Package mongostore implements the store contracts on MongoDB using
// the official driver.
package mongostore

import (
	"errors"

	"github.com/Srinandan2003/CollabSphere/store"

	"go.mongodb.org/mongo-driver/mongo"
)

// wrapErr translates driver errors into the store sentinel errors.
func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return store.ErrNoDocument
	}
	if mongo.IsDuplicateKeyError(err) {
		return store.ErrDuplicate
	}
	return err
}
