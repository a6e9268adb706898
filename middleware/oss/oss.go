package oss

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

type ObjType int

const (
	TypeMedia ObjType = iota
	TypeThumbnail
)

func getTypeString(t ObjType) string {
	switch t {
	case TypeMedia:
		return "media"
	case TypeThumbnail:
		return "thumbnail"
	default:
		panic("invalid ObjType")
	}
}

func getSuffix(t ObjType) string {
	switch t {
	case TypeMedia:
		return ".mp4"
	case TypeThumbnail:
		return ".jpg"
	default:
		panic("invalid ObjType")
	}
}

var ossBucket *oss.Bucket
var bucketName string
var endpoint string

func Init(ep, bucket string) {
	endpoint = ep
	bucketName = bucket

	provider, _ := oss.NewEnvironmentVariableCredentialsProvider()
	cred := provider.GetCredentials()
	ossClient, err := oss.New(endpoint, cred.GetAccessKeyID(), cred.GetAccessKeySecret())
	if err != nil {
		log.Panicln("failed to connect OSS, detail:", err)
	}
	ossBucket, err = ossClient.Bucket(bucketName)
	if err != nil {
		log.Panicln("failed to get target bucket from OSS, detail:", err)
	}
}

type OssObject struct {
	T    ObjType
	Name string
	Data io.Reader
}

func (o OssObject) GetKey() string {
	return fmt.Sprintf("%s/%s%s", getTypeString(o.T), o.Name, getSuffix(o.T))
}

func StoreObject(obj OssObject) error {
	return ossBucket.PutObject(obj.GetKey(), obj.Data)
}

func GetUrl(name string, t ObjType) string {
	return fmt.Sprintf("https://%s.%s/%s/%s%s", bucketName, endpoint, getTypeString(t), name, getSuffix(t))
}

// RemoveByUrl deletes the object a public URL points at.
func RemoveByUrl(url string) error {
	base := fmt.Sprintf("https://%s.%s/", bucketName, endpoint)
	key := strings.TrimPrefix(url, base)
	if key == url || key == "" {
		return fmt.Errorf("url %q does not belong to bucket %s", url, bucketName)
	}
	return ossBucket.DeleteObject(key)
}

// Store adapts the package to the video service's MediaStore.
type Store struct{}

func (Store) UploadMedia(name string, data io.Reader) (string, error) {
	if err := StoreObject(OssObject{T: TypeMedia, Name: name, Data: data}); err != nil {
		return "", fmt.Errorf("failed to upload to OSS, detail: %w", err)
	}
	return GetUrl(name, TypeMedia), nil
}

func (Store) UploadThumbnail(name string, data io.Reader) (string, error) {
	if err := StoreObject(OssObject{T: TypeThumbnail, Name: name, Data: data}); err != nil {
		return "", fmt.Errorf("failed to upload to OSS, detail: %w", err)
	}
	return GetUrl(name, TypeThumbnail), nil
}
