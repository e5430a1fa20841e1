package mongostore

import (
	"errors"
	"io"

	"github.com/Srinandan2003/CollabSphere/database"
	"github.com/Srinandan2003/CollabSphere/store"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
)

// MediaStore keeps post media in GridFS.
type MediaStore struct {
	bucket *gridfs.Bucket
}

func NewMediaStore(db *database.DB) *MediaStore {
	return &MediaStore{bucket: db.Bucket()}
}

func (s *MediaStore) Upload(filename string, r io.Reader) (primitive.ObjectID, error) {
	fileID := primitive.NewObjectID()
	uploadStream, err := s.bucket.OpenUploadStreamWithID(fileID, filename)
	if err != nil {
		return primitive.NilObjectID, err
	}
	defer uploadStream.Close()

	if _, err := io.Copy(uploadStream, r); err != nil {
		return primitive.NilObjectID, err
	}
	return fileID, nil
}

func (s *MediaStore) Open(id primitive.ObjectID) (io.ReadCloser, error) {
	downloadStream, err := s.bucket.OpenDownloadStream(id)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, store.ErrNoDocument
		}
		return nil, err
	}
	return downloadStream, nil
}

func (s *MediaStore) Delete(id primitive.ObjectID) error {
	if err := s.bucket.Delete(id); err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return store.ErrNoDocument
		}
		return err
	}
	return nil
}
