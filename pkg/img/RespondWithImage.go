// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package img

import (
	"net/http"
	"strconv"
	"strings"

	merrors "github.com/spatialcurrent/go-mapfile/pkg/errors"
)

// RespondWithImage writes the encoded image with the content type for the extension.
func RespondWithImage(ext string, w http.ResponseWriter, b []byte) error {
	contentType, ok := ContentTypes[strings.ToLower(ext)]
	if !ok {
		return &merrors.ErrUnknownImageExtension{Extension: ext}
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(b)))
	w.WriteHeader(http.StatusOK)
	_, err := w.Write(b)
	return err
}
