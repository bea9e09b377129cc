// Package model defines the capability interfaces a model object may expose
// to the preflight validators, problem-kind detection over those
// capabilities, and a per-family registry for resolving a model's expected
// input features.
//
// # Capabilities
//
// Instead of probing attributes by name, a model declares what it can do by
// implementing small interfaces:
//
//   - Predictor: point predictions (required for every model)
//   - ProbabilityPredictor: per-class probability distributions
//   - ClassProvider / LegacyClassLister: class label sources
//   - FeatureProvider / FeatureCounter: expected input features
//
// # Role detection
//
// DetectRole resolves whether a model solves a classification or regression
// problem:
//
//	kind, classes, err := model.DetectRole(m)
//	if err != nil {
//	    return err
//	}
//	if kind == model.Classification {
//	    // classes holds the ordered label set
//	}
//
// # Feature extraction
//
// Model families that cannot express their features through the capability
// interfaces register an Extractor keyed by their Family tag:
//
//	model.RegisterExtractor("xgboost.Booster", func(m any) (model.FeatureSpec, error) {
//	    b := m.(*xgboost.Booster)
//	    return model.NamedFeatures(b.FeatureNames), nil
//	})
//
// Unregistered families without capabilities fail with an UNSUPPORTED_MODEL
// error.
package model
