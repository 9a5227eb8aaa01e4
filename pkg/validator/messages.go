/*
Copyright © 2025 Provisio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package validator

// Failure message templates. Formatted through the LocalizationContext with
// the identifying values in fixed positional order.
const (
	msgVirtualMachine = "Virtual Machine '%s' is not supported."

	msgInstanceNamePrefix = "Instance name prefix '%s' does not satisfy Azure DNS label requirement: '%s'."

	msgFQDNSuffix = "FQDN suffix '%s' does not satisfy Azure DNS name suffix requirement: '%s'."

	msgResourceGroup = "Resource Group '%s' does not exist. Please create the Resource Group or use an existing one."

	msgVirtualNetworkResourceGroup = "Resource Group '%s' does not exist. Please create the Resource Group or use an existing one."

	msgVirtualNetwork = "Virtual Network '%s' does not exist within the Resource Group '%s'. Please create the Virtual Network or use an existing one."

	msgSubnet = "Subnet '%s' does not exist under the Virtual Network '%s'. Please create the Subnet or use an existing one."

	msgNetworkSecurityGroupResourceGroup = "Resource Group '%s' does not exist. Please create the Resource Group or use an existing one."

	msgNetworkSecurityGroup = "Network Security Group '%s' does not exist within the Resource Group '%s'. Please create the Network Security Group or use an existing one."

	msgAvailabilitySet = "Availability Set '%s' does not exist. Please create the Availability Set or use an existing one."

	msgImageMissingInAzure = "Image '%s' does not exist in Azure. Please verify the input."

	msgImageMissingInConfig = "Image '%s' does not exist in the configurable image list. Please verify the input."

	msgImageConfigIncomplete = "Image '%s' config does not have all required fields. Please check the plugin config file."

	msgCommunication = "Cannot communicate with Azure while validating: '%s'."

	// msgInvalidArgument covers an overloaded provider signal: a malformed
	// lookup argument and insufficient subscription read permission are
	// indistinguishable from the caller side, so the advisory names both.
	msgInvalidArgument = "Invalid argument while validating: '%s'. Please check permissions, existence, spelling, etc."

	msgGeneric = "Unexpected failure occurred during validation."
)
