package helper

import (
	"context"
	"log"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	"github.com/veejvn/agricultural-serving-platform/config"
)

func InitCloudinary() *cloudinary.Cloudinary {
	cld, err := cloudinary.NewFromParams(
		config.Config("CLOUDINARY_CLOUD_NAME"),
		config.Config("CLOUDINARY_API_KEY"),
		config.Config("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Fatalf("Cloudinary init failed: %v", err)
	}
	return cld
}

// UploadImage đẩy file lên Cloudinary, trả về secure URL
func UploadImage(ctx context.Context, file *multipart.FileHeader, folder string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	cld := InitCloudinary()
	resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{
		Folder:   folder,
		PublicID: uuid.NewString(),
	})
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}
