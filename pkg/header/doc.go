// Package header provides common header types for serialized resources.
//
// The Header type carries Kind, APIVersion, and Metadata fields so that
// preflight reports and mask-parameter documents serialize with consistent
// metadata and versioning information:
//
//	{
//	  "kind": "PreflightReport",
//	  "apiVersion": "preflight.nvidia.com/v1alpha1",
//	  "metadata": {
//	    "id": "7f9c7e9a-…",
//	    "timestamp": "2025-12-30T10:30:00Z",
//	    "version": "v1.0.0"
//	  }
//	}
package header
