package source

import (
	"context"
	"io"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"github.com/ValentinKolb/rbundle/lib/bundle"
)

// AzureBlobAPI is the subset of the *azblob.Client used by the Azure Blob source.
type AzureBlobAPI interface {
	DownloadStream(ctx context.Context, containerName string, blobName string, o *azblob.DownloadStreamOptions) (azblob.DownloadStreamResponse, error)
}

// NewAzureBlobSource creates a source that reads blobs below prefix from an Azure Blob Storage container.
func NewAzureBlobSource(client AzureBlobAPI, container, prefix string) ISource {
	return &azureBlobSourceImpl{
		client:    client,
		container: container,
		prefix:    prefix,
	}
}

type azureBlobSourceImpl struct {
	client    AzureBlobAPI
	container string
	prefix    string
}

// --------------------------------------------------------------------------
// Interface Methods (docu see source.ISource)
// --------------------------------------------------------------------------

func (s *azureBlobSourceImpl) Fetch(ctx context.Context, name string) ([]byte, error) {
	blobName := joinKey(s.prefix, name)
	resp, err := s.client.DownloadStream(ctx, s.container, blobName, nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound, bloberror.ContainerNotFound) {
			return nil, notFound("azblob://"+s.container+"/"+blobName, err)
		}
		return nil, bundle.WrapError(bundle.RetCInternalError, "downloading azblob://"+s.container+"/"+blobName, err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, bundle.WrapError(bundle.RetCInternalError, "reading azblob://"+s.container+"/"+blobName, err)
	}
	return b, nil
}

func (s *azureBlobSourceImpl) String() string {
	return "azblob://" + joinKey(s.container, s.prefix)
}
