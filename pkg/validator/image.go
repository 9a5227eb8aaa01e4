/*
Copyright © 2025 Provisio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"context"
	"log/slog"

	"github.com/provisio/azure-template-validator/pkg/errors"
	"github.com/provisio/azure-template-validator/pkg/lookup"
	"github.com/provisio/azure-template-validator/pkg/template"
)

// checkVMImage validates the VM image in two stages. First the image name is
// resolved through the configurable image registry; an absent or incomplete
// entry fails immediately without any remote call. Only a complete
// descriptor is then checked against the marketplace in the configured
// location, since an image can exist in one region but not another.
func (v *Validator) checkVMImage(ctx context.Context, port lookup.Port,
	cfg template.Configured, acc *Accumulator, loc *template.LocalizationContext) error {
	imageName := cfg.Get(template.TokenImage)

	desc, err := v.images.Get(imageName)
	if err != nil {
		if errors.IsCode(err, errors.ErrCodeNotFound) {
			addError(acc, template.TokenImage, loc, msgImageMissingInConfig, imageName)
		} else {
			addError(acc, template.TokenImage, loc, msgImageConfigIncomplete, imageName)
		}
		return nil
	}

	_, err = port.MarketplaceImage(ctx, v.cfg.Location, desc)
	if err == nil {
		return nil
	}

	code, ok := errors.CodeOf(err)
	if !ok {
		return err
	}

	slog.Debug("marketplace image check failed",
		"image", imageName,
		"descriptor", desc.String(),
		"location", v.cfg.Location,
		"code", code)

	switch code {
	case errors.ErrCodeCommunication:
		addError(acc, template.TokenImage, loc, msgCommunication, desc)
	case errors.ErrCodeInvalidArgument:
		// The provider raises this both for malformed descriptors and for
		// callers lacking subscription-level read permission; the advisory
		// covers both causes because they cannot be told apart here.
		addError(acc, template.TokenImage, loc, msgInvalidArgument, desc)
	default:
		addError(acc, template.TokenImage, loc, msgImageMissingInAzure, desc)
	}
	return nil
}
