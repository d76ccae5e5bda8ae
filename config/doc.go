// SPDX-License-Identifier: MIT

// Package config loads engine settings from YAML with koanf.
//
// Every key is optional; missing keys keep the values of Default():
//
//	consistency:
//	  threshold: 0.1
//	numeric:
//	  epsilon: 1e-9
//	solver:
//	  method: auto            # auto | eigenvector | geometric_mean
//	sensitivity:
//	  range: 0.1
//	  steps: 20
//	  concurrency: 0          # 0 = unbounded
//	aggregation:
//	  method: geometric_mean  # geometric_mean | arithmetic_mean | weighted_geometric_mean
//	  weights: []
//	log:
//	  level: info             # debug | info | warn | error
package config
