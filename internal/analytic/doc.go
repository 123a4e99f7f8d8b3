// Package analytic holds the closed-form epidemic relations: the Lambert W
// principal branch, the asymptotic final-size equation built on it, the
// herd immunity threshold, and the bisection calibrator that inverts the
// final-size relation for a target attack rate.
package analytic
